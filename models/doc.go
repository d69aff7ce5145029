// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and request/response types for
the drawing service.

# Domain Types

  - Member: a registered individual, identified externally by a unique
    registration badge ID. Eligibility for the next draw is the pair
    is_member && eligible_for_drawing.
  - WinnerLogEntry: one appended row per resolved draw, status
    "claimed" or "not_here". Never mutated after creation.
  - WinnerRecord: a log entry joined with the member's identity, used
    by the history endpoints.

# Status Values

A drawn member is resolved with exactly one of:

	models.StatusClaimed  // prize handed over; member leaves the pool
	models.StatusNotHere  // member absent; stays eligible, operator redraws

# JSON

All types carry json tags matching the API wire format. Timestamps are
RFC 3339 via encoding/json's time.Time handling.
*/
package models
