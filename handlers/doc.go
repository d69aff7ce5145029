// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the drawing service.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SessionHandler: PIN login and logout
  - DrawHandler: Drawing a winner and resolving the outcome
  - HistoryHandler: Winner log retrieval
  - ImportHandler: Roster CSV upload and import
  - AdminHandler: Destructive full reset and test-data cleanup

Handlers are created via constructor functions:

	drawHandler := handlers.NewDrawHandler(db, cfg, sessions)

# Operator Flow

Everything except /login and /health sits behind the session guard:

	POST /login                 → Login (PIN → session token)
	POST /import                → Upload (multipart csvfile)
	POST /draw                  → Draw (random eligible member)
	POST /members/{id}/resolve  → Resolve ({"action": "claimed"|"not_here"})
	GET  /winners               → ListWinners
	GET  /winners/latest        → LatestWinner
	POST /admin/reset           → Reset ({"confirmation": "reset"})
	POST /admin/clean-test-data → CleanTestData (TEST-prefixed badges)
	POST /logout                → Logout

# Draw Semantics

Draw reads the eligible set (is_member && eligible_for_drawing) and
picks one member with crypto/rand (draw.go). The pick is held only as
the session's pending winner. Resolving as "claimed" retires the member
and appends a winner_log row in one transaction; "not_here" appends a
row and leaves the member in the pool, so the operator draws again.
A member logged as not_here can therefore win a later draw.

Two operators drawing before either resolves can both be handed the
same member - the pending winner is session state, not a database
reservation. Single-operator usage is assumed.
*/
package handlers
