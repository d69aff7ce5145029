// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/danielhkuo/prizedraw/auth"
	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/middleware"
	"github.com/danielhkuo/prizedraw/models"
	"github.com/danielhkuo/prizedraw/session"
)

type DrawHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Store
}

func NewDrawHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Store) *DrawHandler {
	return &DrawHandler{db: db, cfg: cfg, sessions: sessions}
}

// Draw handles POST /draw
// Picks a uniformly random member from the eligible set and parks it as
// the session's pending winner. Nothing is persisted until the operator
// resolves the draw.
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	members, err := eligibleMembers(h.db)
	if err != nil {
		slog.Error("failed to query eligible members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(members) == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "No eligible members left to draw from")
		return
	}

	winner, err := pickWinner(members)
	if err != nil {
		slog.Error("failed to pick winner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to draw")
		return
	}

	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		h.sessions.SetPendingWinner(sess.Token, &winner)
	}

	slog.Info("winner drawn",
		"member_id", winner.ID,
		"badge_id", winner.RegistrationBadgeID,
		"pool_size", len(members),
	)

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Member: winner,
	})
}

// Resolve handles POST /members/{id}/resolve
// Records the outcome of a draw: "claimed" retires the member from the
// pool and logs the win; "not_here" only logs the absence, leaving the
// member eligible for a redraw.
func (h *DrawHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	memberID := r.PathValue("id")
	if memberID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "member id is required")
		return
	}

	var req models.ResolveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Action != models.StatusClaimed && req.Action != models.StatusNotHere {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid action")
		return
	}

	var member models.Member
	err := h.db.QueryRow(`
		SELECT id, first_name, last_name, COALESCE(organization, '')
		FROM member
		WHERE id = $1
	`, memberID).Scan(&member.ID, &member.FirstName, &member.LastName, &member.Organization)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")
		return
	}
	if err != nil {
		slog.Error("failed to query member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	entryID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate log entry ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record outcome")
		return
	}

	// Eligibility flip and log append must land together.
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if req.Action == models.StatusClaimed {
		_, err = tx.Exec(`
			UPDATE member
			SET eligible_for_drawing = FALSE, updated_at = $1
			WHERE id = $2
		`, time.Now(), memberID)
		if err != nil {
			slog.Error("failed to update member eligibility", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record outcome")
			return
		}
	}

	_, err = tx.Exec(`
		INSERT INTO winner_log (id, member_id, status, drawn_at)
		VALUES ($1, $2, $3, $4)
	`, entryID, memberID, req.Action, time.Now())
	if err != nil {
		slog.Error("failed to insert winner log entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record outcome")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit resolve", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record outcome")
		return
	}

	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		h.sessions.ClearPendingWinner(sess.Token)
	}

	slog.Info("draw resolved", "member_id", memberID, "status", req.Action)

	var message string
	if req.Action == models.StatusClaimed {
		message = fmt.Sprintf("%s %s claimed their prize", member.FirstName, member.LastName)
	} else {
		message = fmt.Sprintf("%s %s was not present, a record has been made. Draw again when ready", member.FirstName, member.LastName)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResolveResponse{
		Status:  req.Action,
		Message: message,
	})
}

// eligibleMembers returns the members currently in the draw pool.
func eligibleMembers(db *sql.DB) ([]models.Member, error) {
	rows, err := db.Query(`
		SELECT id, registration_badge_id, first_name, last_name,
		       COALESCE(organization, ''), email, is_member, eligible_for_drawing,
		       created_at, updated_at
		FROM member
		WHERE eligible_for_drawing = TRUE AND is_member = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.ID, &m.RegistrationBadgeID, &m.FirstName, &m.LastName,
			&m.Organization, &m.Email, &m.IsMember, &m.EligibleForDrawing,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// pickWinner selects one member uniformly at random. The source is
// crypto/rand: the drawing must be unpredictable, not just unbiased.
func pickWinner(members []models.Member) (models.Member, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(members))))
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to read random source: %w", err)
	}
	return members[n.Int64()], nil
}
