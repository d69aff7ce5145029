// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds operator sessions in memory.

A session is created after a successful PIN check and identified by a
random token (see the auth package). Besides the authenticated flag
implied by its existence, a session carries one piece of ephemeral
state: the pending winner of the most recent draw, which is cleared
when the operator resolves the draw. The pending winner is never
persisted, so two operators drawing concurrently can be handed the same
member - the service assumes a single operator at a time.

Sessions expire after an inactivity TTL. Expiry is enforced lazily on
Get and eagerly by CleanupExpired, which main runs on a timer:

	store := session.NewStore(session.DefaultTTL)
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			store.CleanupExpired()
		}
	}()
*/
package session
