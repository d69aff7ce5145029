// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Winner log status constants
const (
	StatusClaimed = "claimed"
	StatusNotHere = "not_here"
)

// ResetConfirmation is the exact phrase an operator must type to
// trigger the administrative reset. Case sensitive.
const ResetConfirmation = "reset"

// Request types

type LoginRequest struct {
	PIN string `json:"pin"`
}

type ResolveRequest struct {
	Action string `json:"action"`
}

type ResetRequest struct {
	Confirmation string `json:"confirmation"`
}

// Response types

type LoginResponse struct {
	SessionToken string `json:"session_token"`
}

type DrawResponse struct {
	Member Member `json:"member"`
}

type ImportResponse struct {
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}

type ResolveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ResetResponse struct {
	EntriesDeleted int `json:"entries_deleted"`
	MembersReset   int `json:"members_reset"`
}

type CleanTestDataResponse struct {
	MembersDeleted int `json:"members_deleted"`
	EntriesDeleted int `json:"entries_deleted"`
}

// Domain types

type Member struct {
	ID                  string    `json:"id"`
	RegistrationBadgeID string    `json:"registration_badge_id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Organization        string    `json:"organization"`
	Email               string    `json:"email"`
	IsMember            bool      `json:"is_member"`
	EligibleForDrawing  bool      `json:"eligible_for_drawing"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type WinnerLogEntry struct {
	ID       string    `json:"id"`
	MemberID string    `json:"member_id"`
	Status   string    `json:"status"`
	DrawnAt  time.Time `json:"drawn_at"`
}

// WinnerRecord is a winner log entry joined with the member it
// references, as served by the history endpoints.
type WinnerRecord struct {
	WinnerLogEntry
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Organization string `json:"organization"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
