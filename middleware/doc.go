// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Session Guard

Every operator endpoint is composed behind RequireSession:

	mux.HandleFunc("POST /draw",
		middleware.WithLogging(middleware.RequireSession(store, drawHandler.Draw)))

The guard accepts the token from the drawing_session cookie (browsers)
or the X-Session-Token header (scripts), rejects with 401 when absent
or expired, and otherwise injects the session into the request context:

	sess, _ := middleware.SessionFromContext(r.Context())

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
