// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/prizedraw/auth"
	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/db"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call returns an independent database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second pooled connection would see a different empty :memory:
	// database, so pin the pool to one.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8080,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		AccessPIN:     "123456",
		UploadDir:     "uploads",
		InitialRoster: "initial_registrants.csv",
	}
}

// CreateTestMember inserts a member and returns its ID.
func CreateTestMember(t *testing.T, conn *sql.DB, badgeID, firstName, lastName string, eligible bool) string {
	t.Helper()

	memberID, _ := auth.GenerateID(16)
	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO member (id, registration_badge_id, first_name, last_name,
		                    organization, email, is_member, eligible_for_drawing,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'Test Org', 'test@example.com', TRUE, $5, $6, $7)
	`, memberID, badgeID, firstName, lastName, eligible, now, now)
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return memberID
}

// CreateTestWinnerEntry appends a winner log row and returns its ID.
func CreateTestWinnerEntry(t *testing.T, conn *sql.DB, memberID, status string, drawnAt time.Time) string {
	t.Helper()

	entryID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO winner_log (id, member_id, status, drawn_at)
		VALUES ($1, $2, $3, $4)
	`, entryID, memberID, status, drawnAt)
	if err != nil {
		t.Fatalf("Failed to create test winner log entry: %v", err)
	}

	return entryID
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
