// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielhkuo/prizedraw/models"
	"github.com/danielhkuo/prizedraw/testutil"
)

func TestReset_WithCorrectConfirmation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store, token := newOperatorSession(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig())

	johnID := testutil.CreateTestMember(t, conn, "B1", "John", "Doe", false)
	janeID := testutil.CreateTestMember(t, conn, "B2", "Jane", "Roe", true)
	testutil.CreateTestWinnerEntry(t, conn, johnID, models.StatusClaimed, time.Now().Add(-time.Hour))
	testutil.CreateTestWinnerEntry(t, conn, janeID, models.StatusNotHere, time.Now())

	req := testutil.MakeRequest("POST", "/admin/reset",
		models.ResetRequest{Confirmation: "reset"}, nil)
	w := serveAuthed(store, token, handler.Reset, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.EntriesDeleted != 2 {
		t.Errorf("entries_deleted = %d, want 2", resp.EntriesDeleted)
	}
	if resp.MembersReset != 2 {
		t.Errorf("members_reset = %d, want 2", resp.MembersReset)
	}

	if got := testutil.CountRows(t, conn, "winner_log"); got != 0 {
		t.Errorf("winner_log count = %d, want 0 after reset", got)
	}

	var ineligible int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM member WHERE eligible_for_drawing = FALSE`).Scan(&ineligible); err != nil {
		t.Fatal(err)
	}
	if ineligible != 0 {
		t.Errorf("%d members still ineligible after reset", ineligible)
	}
}

func TestReset_WithWrongConfirmation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store, token := newOperatorSession(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig())

	johnID := testutil.CreateTestMember(t, conn, "B1", "John", "Doe", false)
	testutil.CreateTestWinnerEntry(t, conn, johnID, models.StatusClaimed, time.Now())

	tests := []struct {
		name         string
		confirmation string
	}{
		{"empty", ""},
		{"wrong word", "delete"},
		{"wrong case", "Reset"},
		{"padded", " reset "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/admin/reset",
				models.ResetRequest{Confirmation: tt.confirmation}, nil)
			w := serveAuthed(store, token, handler.Reset, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	// Zero mutations across all rejected attempts.
	if got := testutil.CountRows(t, conn, "winner_log"); got != 1 {
		t.Errorf("winner_log count = %d, want 1 (untouched)", got)
	}
	var eligible bool
	if err := conn.QueryRow(`SELECT eligible_for_drawing FROM member WHERE id = $1`, johnID).Scan(&eligible); err != nil {
		t.Fatal(err)
	}
	if eligible {
		t.Error("rejected reset mutated member eligibility")
	}
}

func TestCleanTestData_RemovesTestMembersAndTheirLogs(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store, token := newOperatorSession(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig())

	// Two rehearsal records and one real member, each with a log entry.
	test1 := testutil.CreateTestMember(t, conn, "TEST1", "Trial", "One", true)
	test2 := testutil.CreateTestMember(t, conn, "TEST2", "Trial", "Two", true)
	realID := testutil.CreateTestMember(t, conn, "B1", "John", "Doe", true)
	testutil.CreateTestWinnerEntry(t, conn, test1, models.StatusClaimed, time.Now().Add(-2*time.Hour))
	testutil.CreateTestWinnerEntry(t, conn, test2, models.StatusNotHere, time.Now().Add(-time.Hour))
	testutil.CreateTestWinnerEntry(t, conn, realID, models.StatusClaimed, time.Now())

	req := testutil.MakeRequest("POST", "/admin/clean-test-data", nil, nil)
	w := serveAuthed(store, token, handler.CleanTestData, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CleanTestDataResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.MembersDeleted != 2 {
		t.Errorf("members_deleted = %d, want 2", resp.MembersDeleted)
	}
	if resp.EntriesDeleted != 2 {
		t.Errorf("entries_deleted = %d, want 2", resp.EntriesDeleted)
	}

	if got := testutil.CountRows(t, conn, "member"); got != 1 {
		t.Errorf("member count = %d, want 1 (only the real member)", got)
	}
	if got := testutil.CountRows(t, conn, "winner_log"); got != 1 {
		t.Errorf("winner_log count = %d, want 1 (only the real entry)", got)
	}

	var remaining string
	if err := conn.QueryRow(`SELECT registration_badge_id FROM member`).Scan(&remaining); err != nil {
		t.Fatal(err)
	}
	if remaining != "B1" {
		t.Errorf("surviving member badge = %q, want B1", remaining)
	}
}

func TestCleanTestData_PrefixMatchingIsExact(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store, token := newOperatorSession(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig())

	// Prefix must match from the start; a badge merely containing TEST
	// or using a different case stays.
	testutil.CreateTestMember(t, conn, "CONTEST1", "Connie", "Test", true)
	testutil.CreateTestMember(t, conn, "test1", "Lower", "Case", true)
	testutil.CreateTestMember(t, conn, "TEST", "Bare", "Prefix", true)

	req := testutil.MakeRequest("POST", "/admin/clean-test-data", nil, nil)
	w := serveAuthed(store, token, handler.CleanTestData, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CleanTestDataResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.MembersDeleted != 1 {
		t.Errorf("members_deleted = %d, want 1 (the bare TEST badge)", resp.MembersDeleted)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM member WHERE registration_badge_id IN ('CONTEST1', 'test1')`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("%d non-prefix members survive, want 2", count)
	}
}

func TestCleanTestData_NothingToClean(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store, token := newOperatorSession(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig())

	realID := testutil.CreateTestMember(t, conn, "B1", "John", "Doe", true)
	testutil.CreateTestWinnerEntry(t, conn, realID, models.StatusClaimed, time.Now())

	req := testutil.MakeRequest("POST", "/admin/clean-test-data", nil, nil)
	w := serveAuthed(store, token, handler.CleanTestData, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CleanTestDataResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.MembersDeleted != 0 || resp.EntriesDeleted != 0 {
		t.Errorf("clean on real-only roster = %+v, want zero deletions", resp)
	}
	if got := testutil.CountRows(t, conn, "member"); got != 1 {
		t.Errorf("member count = %d, want 1", got)
	}
}
