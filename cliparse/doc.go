// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first via godotenv, so
local runs can keep secrets out of the shell history.

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: sqlite file path or postgres connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSecret: secret backing operator sessions
  - AccessPIN: shared operator PIN (default: 123456, override it)
  - UploadDir: destination for uploaded roster files (default: uploads)
  - InitialRoster: CSV imported on first run when the roster is empty

# CLI Flags

	-p               Server port
	-d               Database URL or file path
	-t               Database type (sqlite or postgres)
	-uploads         Upload directory
	-roster          Initial roster CSV path
	-session-secret  Session secret (prefer env)
	-pin             Operator access PIN (prefer env)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	UPLOAD_DIR      → -uploads
	INITIAL_ROSTER  → -roster
	SESSION_SECRET  → -session-secret
	DRAWING_PIN     → -pin

CLI flags take precedence over environment variables.

# Insecure Fallbacks

Unlike the database settings, a missing SESSION_SECRET does not fail
startup: the well-known dev value is substituted and Config's
InsecureSecret field is set so main can log a warning. The PIN default
is likewise a known weak value. Both exist only so a bare
`go run .` works on a laptop.
*/
package cliparse
