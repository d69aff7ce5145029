// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/prizedraw/testutil"
)

const rosterHeader = "Registration_Badge_ID,First_Name,Last_Name,Organization,Work Email Address Do not use personal,Is_Member?\n"

func TestImport_AddsNewMembers(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	csv := rosterHeader +
		"TEST1,John,Doe,Org1,john@x.com,Yes\n" +
		"TEST2,Jane,Roe,Org2,jane@x.com,yes\n"

	res, err := Import(conn, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if res.Added != 2 || res.Updated != 0 || res.Skipped != 0 {
		t.Errorf("Import() = %+v, want {Added:2 Updated:0 Skipped:0}", res)
	}
	if got := testutil.CountRows(t, conn, "member"); got != 2 {
		t.Errorf("member count = %d, want 2", got)
	}

	var firstName string
	var eligible, isMember bool
	err = conn.QueryRow(`
		SELECT first_name, eligible_for_drawing, is_member
		FROM member WHERE registration_badge_id = 'TEST1'
	`).Scan(&firstName, &eligible, &isMember)
	if err != nil {
		t.Fatalf("Failed to query imported member: %v", err)
	}
	if firstName != "John" {
		t.Errorf("first_name = %q, want John", firstName)
	}
	if !eligible || !isMember {
		t.Errorf("eligible=%v is_member=%v, want both true", eligible, isMember)
	}
}

func TestImport_UpdatesExistingMemberInPlace(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	first := rosterHeader + "TEST1,John,Doe,Org1,john@x.com,Yes\n"
	if _, err := Import(conn, strings.NewReader(first)); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}

	// Make the member ineligible, as if they had claimed a prize.
	if _, err := conn.Exec(`UPDATE member SET eligible_for_drawing = FALSE WHERE registration_badge_id = 'TEST1'`); err != nil {
		t.Fatalf("Failed to flip eligibility: %v", err)
	}

	second := rosterHeader + "TEST1,Johnny,Doe,Org1 Renamed,johnny@x.com,Yes\n"
	res, err := Import(conn, strings.NewReader(second))
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}

	if res.Added != 0 || res.Updated != 1 || res.Skipped != 0 {
		t.Errorf("Import() = %+v, want {Added:0 Updated:1 Skipped:0}", res)
	}
	if got := testutil.CountRows(t, conn, "member"); got != 1 {
		t.Errorf("member count = %d, want 1 (no duplicate)", got)
	}

	var firstName, organization, email string
	var eligible bool
	err = conn.QueryRow(`
		SELECT first_name, organization, email, eligible_for_drawing
		FROM member WHERE registration_badge_id = 'TEST1'
	`).Scan(&firstName, &organization, &email, &eligible)
	if err != nil {
		t.Fatalf("Failed to query updated member: %v", err)
	}
	if firstName != "Johnny" {
		t.Errorf("first_name = %q, want Johnny", firstName)
	}
	if organization != "Org1 Renamed" {
		t.Errorf("organization = %q, want Org1 Renamed", organization)
	}
	if email != "johnny@x.com" {
		t.Errorf("email = %q, want johnny@x.com", email)
	}
	if !eligible {
		t.Error("re-import must reset eligible_for_drawing to true")
	}
}

func TestImport_SkipsNonMembers(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	csv := rosterHeader +
		"TEST1,John,Doe,Org1,john@x.com,No\n" +
		"TEST2,Jane,Roe,Org2,jane@x.com,\n" +
		"TEST3,Jim,Poe,Org3,jim@x.com,YES\n"

	res, err := Import(conn, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if res.Added != 1 || res.Skipped != 2 {
		t.Errorf("Import() = %+v, want {Added:1 Skipped:2}", res)
	}

	var exists bool
	if err := conn.QueryRow(`SELECT EXISTS(SELECT 1 FROM member WHERE registration_badge_id = 'TEST1')`).Scan(&exists); err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("non-member row was inserted")
	}
}

func TestImport_SkipsRowsMissingRequiredFields(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	tests := []struct {
		name string
		row  string
	}{
		{"missing badge ID", ",John,Doe,Org1,john@x.com,Yes"},
		{"blank badge ID", "   ,John,Doe,Org1,john@x.com,Yes"},
		{"missing first name", "TESTX,,Doe,Org1,john@x.com,Yes"},
		{"missing last name", "TESTX,John,,Org1,john@x.com,Yes"},
		{"missing email", "TESTX,John,Doe,Org1,,Yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Import(conn, strings.NewReader(rosterHeader+tt.row+"\n"))
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			if res.Skipped != 1 || res.Added != 0 || res.Updated != 0 {
				t.Errorf("Import() = %+v, want {Skipped:1}", res)
			}
		})
	}

	if got := testutil.CountRows(t, conn, "member"); got != 0 {
		t.Errorf("member count = %d, want 0", got)
	}
}

func TestImport_MissingOrganizationIsFine(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	csv := rosterHeader + "TEST1,John,Doe,,john@x.com,Yes\n"
	res, err := Import(conn, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if res.Added != 1 {
		t.Errorf("Added = %d, want 1 (organization is optional)", res.Added)
	}
}

func TestImport_ToleratesBOM(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	csv := "\xEF\xBB\xBF" + rosterHeader + "TEST1,John,Doe,Org1,john@x.com,Yes\n"
	res, err := Import(conn, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Import() with BOM error = %v", err)
	}
	if res.Added != 1 {
		t.Errorf("Added = %d, want 1 (BOM must not corrupt the first header)", res.Added)
	}
}

func TestImport_ToleratesRaggedRows(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// Second row is short, third has a trailing extra column.
	csv := rosterHeader +
		"TEST1,John,Doe,Org1,john@x.com,Yes\n" +
		"TEST2,Jane\n" +
		"TEST3,Jim,Poe,Org3,jim@x.com,Yes,extra\n"

	res, err := Import(conn, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	// The short row has no membership flag, so it is skipped.
	if res.Added != 2 || res.Skipped != 1 {
		t.Errorf("Import() = %+v, want {Added:2 Skipped:1}", res)
	}
}

func TestImport_TrimsWhitespace(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	csv := rosterHeader + "TEST1,  John  ,  Doe ,Org1, john@x.com ,  Yes \n"
	if _, err := Import(conn, strings.NewReader(csv)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	var firstName, email string
	err := conn.QueryRow(`SELECT first_name, email FROM member WHERE registration_badge_id = 'TEST1'`).Scan(&firstName, &email)
	if err != nil {
		t.Fatal(err)
	}
	if firstName != "John" || email != "john@x.com" {
		t.Errorf("fields not trimmed: first_name=%q email=%q", firstName, email)
	}
}

func TestImportFile_MissingFile(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := ImportFile(conn, filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("ImportFile() expected error for missing file")
	}
	if got := testutil.CountRows(t, conn, "member"); got != 0 {
		t.Errorf("member count = %d, want 0 after failed import", got)
	}
}

func TestImportFile_RoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	path := filepath.Join(t.TempDir(), "roster.csv")
	content := rosterHeader + "TEST1,John,Doe,Org1,john@x.com,Yes\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ImportFile(conn, path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if res.Added != 1 {
		t.Errorf("Added = %d, want 1", res.Added)
	}
}

func TestMemberCount(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	count, err := MemberCount(conn)
	if err != nil {
		t.Fatalf("MemberCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("MemberCount() = %d, want 0", count)
	}

	testutil.CreateTestMember(t, conn, "B1", "John", "Doe", true)
	testutil.CreateTestMember(t, conn, "B2", "Jane", "Roe", true)

	count, err = MemberCount(conn)
	if err != nil {
		t.Fatalf("MemberCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("MemberCount() = %d, want 2", count)
	}
}
