// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the prize drawing server.

prizedraw runs the prize drawing at an event: import the registration
roster from CSV, draw a uniformly random eligible member, record
whether they claimed the prize or were absent (redraw), and keep an
append-only winner history.

# Starting the Server

The server runs on sqlite out of the box:

	go run .

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (all have local-friendly defaults):

  - PORT (-p): Server port (default: 8080)
  - DATABASE_URL (-d): sqlite file or postgres connection string
  - DATABASE_TYPE (-t): "sqlite" or "postgres"
  - SESSION_SECRET (-session-secret): insecure fallback if unset (warned)
  - DRAWING_PIN (-pin): operator PIN (default: 123456, override it)
  - UPLOAD_DIR (-uploads): roster upload destination
  - INITIAL_ROSTER (-roster): CSV imported on first run

A .env file in the working directory is picked up automatically.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, draw, history, import, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session guard, logging, JSON helpers
  - session: in-memory operator sessions and the pending winner
  - roster: CSV import with batch upsert by badge ID
  - models: Request/response and domain types
  - auth: PIN check and token generation
  - db: driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
