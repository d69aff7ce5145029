// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"
	"time"

	"github.com/danielhkuo/prizedraw/auth"
	"github.com/danielhkuo/prizedraw/models"
)

// DefaultTTL is how long a session survives without activity.
const DefaultTTL = time.Hour

// Session is the per-operator server-side state. The pending winner is
// ephemeral here and never written to the database.
type Session struct {
	Token         string
	PendingWinner *models.Member
	LastActivity  time.Time
}

// Store manages operator sessions keyed by token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store with the given inactivity TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create starts a new authenticated session and returns its token.
func (s *Store) Create() (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &Session{
		Token:        token,
		LastActivity: time.Now(),
	}
	return token, nil
}

// Get returns the session for a token, refreshing its activity time.
// Expired sessions are treated as absent and removed.
func (s *Store) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[token]
	if !exists {
		return nil, false
	}
	if time.Since(session.LastActivity) > s.ttl {
		delete(s.sessions, token)
		return nil, false
	}
	session.LastActivity = time.Now()
	return session, true
}

// Delete removes a session (logout).
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SetPendingWinner records the member just drawn for this session.
func (s *Store) SetPendingWinner(token string, m *models.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, exists := s.sessions[token]; exists {
		session.PendingWinner = m
	}
}

// ClearPendingWinner drops the pending winner after a resolve.
func (s *Store) ClearPendingWinner(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, exists := s.sessions[token]; exists {
		session.PendingWinner = nil
	}
}

// CleanupExpired removes sessions past the inactivity TTL and returns
// how many were dropped. Called periodically from main.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if time.Since(session.LastActivity) > s.ttl {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
