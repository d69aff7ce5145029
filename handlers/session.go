// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/prizedraw/auth"
	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/middleware"
	"github.com/danielhkuo/prizedraw/models"
	"github.com/danielhkuo/prizedraw/session"
)

type SessionHandler struct {
	cfg      cliparse.Config
	sessions *session.Store
}

func NewSessionHandler(cfg cliparse.Config, sessions *session.Store) *SessionHandler {
	return &SessionHandler{cfg: cfg, sessions: sessions}
}

// Login handles POST /login
// A correct PIN starts a server-side session; the token is set as an
// HttpOnly cookie and also returned for non-browser clients.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.VerifyPIN(req.PIN, h.cfg.AccessPIN); err != nil {
		slog.Warn("rejected login attempt", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid PIN")
		return
	}

	token, err := h.sessions.Create()
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("operator logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		SessionToken: token,
	})
}

// Logout handles POST /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		h.sessions.Delete(token)
	}

	// Expire the cookie client-side too
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "You have been logged out",
	})
}
