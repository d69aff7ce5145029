// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/middleware"
	"github.com/danielhkuo/prizedraw/models"
)

type HistoryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHistoryHandler(db *sql.DB, cfg cliparse.Config) *HistoryHandler {
	return &HistoryHandler{db: db, cfg: cfg}
}

// ListWinners handles GET /winners
// Full winner log, newest first, with member identity joined in.
func (h *HistoryHandler) ListWinners(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT w.id, w.member_id, w.status, w.drawn_at,
		       m.first_name, m.last_name, COALESCE(m.organization, '')
		FROM winner_log w
		JOIN member m ON m.id = w.member_id
		ORDER BY w.drawn_at DESC, w.id DESC
	`)
	if err != nil {
		slog.Error("failed to query winner log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	records := []models.WinnerRecord{}
	for rows.Next() {
		var rec models.WinnerRecord
		if err := rows.Scan(
			&rec.ID, &rec.MemberID, &rec.Status, &rec.DrawnAt,
			&rec.FirstName, &rec.LastName, &rec.Organization,
		); err != nil {
			slog.Error("failed to scan winner log entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read winner log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// LatestWinner handles GET /winners/latest
// Most recent log entry regardless of status; 404 when no draws have
// been resolved yet.
func (h *HistoryHandler) LatestWinner(w http.ResponseWriter, r *http.Request) {
	var rec models.WinnerRecord
	err := h.db.QueryRow(`
		SELECT w.id, w.member_id, w.status, w.drawn_at,
		       m.first_name, m.last_name, COALESCE(m.organization, '')
		FROM winner_log w
		JOIN member m ON m.id = w.member_id
		ORDER BY w.drawn_at DESC, w.id DESC
		LIMIT 1
	`).Scan(
		&rec.ID, &rec.MemberID, &rec.Status, &rec.DrawnAt,
		&rec.FirstName, &rec.LastName, &rec.Organization,
	)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No drawings yet")
		return
	}
	if err != nil {
		slog.Error("failed to query latest winner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}
