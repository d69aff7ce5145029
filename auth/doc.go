// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides PIN verification and token generation utilities.

# PIN Verification

The operator PIN is a shared secret compared in constant time:

	err := auth.VerifyPIN(entered, cfg.AccessPIN)

hmac.Equal is used rather than == so the comparison does not leak
timing information about the configured PIN.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded without padding. One is issued per
successful login and keys the server-side session record.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
