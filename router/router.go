// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/handlers"
	"github.com/danielhkuo/prizedraw/middleware"
	"github.com/danielhkuo/prizedraw/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(cfg, sessions)
	drawHandler := handlers.NewDrawHandler(db, cfg, sessions)
	historyHandler := handlers.NewHistoryHandler(db, cfg)
	importHandler := handlers.NewImportHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// guarded composes the session gate in front of an operator endpoint.
	guarded := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication (the only open endpoints besides health)
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))

	// Drawing operations
	mux.HandleFunc("POST /draw", guarded(drawHandler.Draw))
	mux.HandleFunc("POST /members/{id}/resolve", guarded(drawHandler.Resolve))

	// Winner history
	mux.HandleFunc("GET /winners", guarded(historyHandler.ListWinners))
	mux.HandleFunc("GET /winners/latest", guarded(historyHandler.LatestWinner))

	// Roster import
	mux.HandleFunc("POST /import", guarded(importHandler.Upload))

	// Administrative operations
	mux.HandleFunc("POST /admin/reset", guarded(adminHandler.Reset))
	mux.HandleFunc("POST /admin/clean-test-data", guarded(adminHandler.CleanTestData))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("prizedraw API v1"))
	})

	return mux
}
