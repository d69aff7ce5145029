// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/middleware"
	"github.com/danielhkuo/prizedraw/models"
)

// testBadgePrefix marks roster rows seeded for rehearsals. Members
// whose badge ID starts with it are fair game for bulk deletion.
const testBadgePrefix = "TEST"

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// Reset handles POST /admin/reset
// Deletes the entire winner log and restores every member's
// eligibility, in one transaction. The request must carry the exact
// confirmation phrase; a typed phrase rather than a boolean makes an
// accidental trigger harder.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Confirmation != models.ResetConfirmation {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Confirmation text did not match, reset was not performed")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	delRes, err := tx.Exec(`DELETE FROM winner_log`)
	if err != nil {
		slog.Error("failed to delete winner log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset drawings")
		return
	}
	entriesDeleted, _ := delRes.RowsAffected()

	// Touching updated_at makes RowsAffected count every member on
	// sqlite too, which only reports rows it actually changed.
	updRes, err := tx.Exec(`
		UPDATE member SET eligible_for_drawing = TRUE, updated_at = $1
	`, time.Now())
	if err != nil {
		slog.Error("failed to reset member eligibility", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset drawings")
		return
	}
	membersReset, _ := updRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset drawings")
		return
	}

	slog.Info("drawings reset",
		"entries_deleted", entriesDeleted,
		"members_reset", membersReset,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		EntriesDeleted: int(entriesDeleted),
		MembersReset:   int(membersReset),
	})
}

// CleanTestData handles POST /admin/clean-test-data
// Removes members whose badge ID starts with the test prefix, along
// with their winner log rows. Real members are untouched. The log rows
// go first because sqlite does not enforce the foreign key by default.
func (h *AdminHandler) CleanTestData(w http.ResponseWriter, r *http.Request) {
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// substr comparison instead of LIKE: sqlite's LIKE is
	// case-insensitive, postgres's is not. This matches the same rows
	// on both drivers.
	logRes, err := tx.Exec(`
		DELETE FROM winner_log
		WHERE member_id IN (
			SELECT id FROM member WHERE substr(registration_badge_id, 1, $1) = $2
		)
	`, len(testBadgePrefix), testBadgePrefix)
	if err != nil {
		slog.Error("failed to delete test winner log entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clean test data")
		return
	}
	entriesDeleted, _ := logRes.RowsAffected()

	memberRes, err := tx.Exec(`
		DELETE FROM member WHERE substr(registration_badge_id, 1, $1) = $2
	`, len(testBadgePrefix), testBadgePrefix)
	if err != nil {
		slog.Error("failed to delete test members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clean test data")
		return
	}
	membersDeleted, _ := memberRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit test data cleanup", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clean test data")
		return
	}

	slog.Info("test data cleaned",
		"members_deleted", membersDeleted,
		"entries_deleted", entriesDeleted,
	)

	middleware.JSONResponse(w, http.StatusOK, models.CleanTestDataResponse{
		MembersDeleted: int(membersDeleted),
		EntriesDeleted: int(entriesDeleted),
	})
}
