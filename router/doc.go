// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the drawing service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions)

# Endpoints

Health:

	GET /health

Authentication (open):

	POST /login  - PIN in, session token out
	POST /logout - Revoke the current session

Operator endpoints (session required):

	POST /draw                 - Draw a random eligible member
	POST /members/{id}/resolve - Record claimed / not_here
	GET  /winners              - Full winner history
	GET  /winners/latest       - Most recent winner
	POST /import               - Upload and import a roster CSV
	POST /admin/reset          - Wipe the log, restore eligibility
	POST /admin/clean-test-data - Delete TEST-prefixed rehearsal members

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(cfg, sessions)
	drawHandler := handlers.NewDrawHandler(db, cfg, sessions)
	historyHandler := handlers.NewHistoryHandler(db, cfg)
	importHandler := handlers.NewImportHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

Guarded routes are composed as WithLogging(RequireSession(handler)), so
an unauthenticated request never reaches business logic.
*/
package router
