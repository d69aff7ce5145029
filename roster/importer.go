// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bufio"
	"bytes"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/danielhkuo/prizedraw/auth"
)

// Result summarizes one import run.
type Result struct {
	Added   int
	Updated int
	Skipped int
}

// csvRow mirrors the registration export's column headers.
type csvRow struct {
	BadgeID      string `csv:"Registration_Badge_ID"`
	FirstName    string `csv:"First_Name"`
	LastName     string `csv:"Last_Name"`
	Organization string `csv:"Organization"`
	Email        string `csv:"Work Email Address Do not use personal"`
	IsMember     string `csv:"Is_Member?"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportFile imports the roster CSV at path. A missing or unreadable
// file reports an error with zero database changes.
func ImportFile(db *sql.DB, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	return Import(db, f)
}

// Import reads a roster CSV and upserts members by badge ID. All writes
// happen in one transaction committed after the whole file is
// processed, so a failure mid-file leaves the roster untouched.
//
// Rows are skipped (counted, never fatal) when the membership column is
// not "yes" (case-insensitive) or when badge ID, first name, last name,
// or email is blank after trimming.
func Import(db *sql.DB, r io.Reader) (Result, error) {
	rows, err := parseCSV(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse roster CSV: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return Result{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var res Result
	now := time.Now()

	for _, row := range rows {
		if !strings.EqualFold(strings.TrimSpace(row.IsMember), "yes") {
			res.Skipped++
			continue
		}

		badgeID := strings.TrimSpace(row.BadgeID)
		firstName := strings.TrimSpace(row.FirstName)
		lastName := strings.TrimSpace(row.LastName)
		email := strings.TrimSpace(row.Email)
		organization := strings.TrimSpace(row.Organization)

		if badgeID == "" || firstName == "" || lastName == "" || email == "" {
			slog.Warn("skipping roster row with missing required field",
				"badge_id", badgeID,
				"first_name", firstName,
				"last_name", lastName,
			)
			res.Skipped++
			continue
		}

		var memberID string
		err := tx.QueryRow(`
			SELECT id FROM member WHERE registration_badge_id = $1
		`, badgeID).Scan(&memberID)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			memberID, err = auth.GenerateID(16)
			if err != nil {
				return Result{}, fmt.Errorf("failed to generate member ID: %w", err)
			}
			_, err = tx.Exec(`
				INSERT INTO member (id, registration_badge_id, first_name, last_name,
				                    organization, email, is_member, eligible_for_drawing,
				                    created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, TRUE, TRUE, $7, $8)
			`, memberID, badgeID, firstName, lastName, organization, email, now, now)
			if err != nil {
				return Result{}, fmt.Errorf("failed to insert member %s: %w", badgeID, err)
			}
			res.Added++

		case err != nil:
			return Result{}, fmt.Errorf("failed to look up member %s: %w", badgeID, err)

		default:
			// Re-sighting a badge ID refreshes the record and restores
			// eligibility, even if the member claimed a prize before.
			_, err = tx.Exec(`
				UPDATE member
				SET first_name = $1, last_name = $2, organization = $3, email = $4,
				    is_member = TRUE, eligible_for_drawing = TRUE, updated_at = $5
				WHERE id = $6
			`, firstName, lastName, organization, email, now, memberID)
			if err != nil {
				return Result{}, fmt.Errorf("failed to update member %s: %w", badgeID, err)
			}
			res.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("failed to commit import: %w", err)
	}

	return res, nil
}

// parseCSV decodes the roster file, tolerating a UTF-8 BOM and ragged
// rows (registration exports are not always well-formed).
func parseCSV(r io.Reader) ([]csvRow, error) {
	br := bufio.NewReader(r)
	if peek, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(peek, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows []csvRow
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MemberCount reports how many members are in the roster. Used at
// startup to decide whether the bootstrap import should run.
func MemberCount(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM member`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}
