// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster imports the member roster from registration CSV exports.

# Import

Import upserts members by registration badge ID:

	res, err := roster.ImportFile(db, "registrants.csv")
	// res.Added, res.Updated, res.Skipped

The whole file is processed inside a single transaction: either every
valid row lands or none do. Row-level problems (non-member rows, blank
required fields) are counted as skipped and never abort the batch;
anything unexpected rolls the batch back and surfaces the error.

Re-importing a badge ID that already exists overwrites the member's
name, organization, and email, and forces is_member and
eligible_for_drawing back to true. Member count stays unchanged.

# File Format

Header-mapped CSV (gocsv with csv struct tags) using the registration
system's column names:

	Registration_Badge_ID, First_Name, Last_Name, Organization,
	Work Email Address Do not use personal, Is_Member?

A row is a member only when Is_Member? equals "yes", case-insensitive.
A leading UTF-8 byte-order mark is tolerated, as are ragged rows -
these exports are produced by hand often enough that strictness would
just lose data.

# Bootstrap

main uses MemberCount to run a one-time import of the configured
initial roster when the member table is empty.
*/
package roster
