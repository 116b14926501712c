package session

import (
	"sync"

	"github.com/medichat/medichat-client/internal/domain"
	"github.com/medichat/medichat-client/internal/logger"
)

// Backend is the durable key-value storage behind the store. It keeps the
// token, user record and admin flag between runs.
type Backend interface {
	Save(s domain.Session) error
	Load() (domain.Session, bool, error)
	Clear() error
	Close() error
}

// Store holds the current session in memory and mirrors every mutation to
// its backend. Logged-in status is derived from token presence at startup
// and is kept in sync by explicit Login/Logout calls only; an expired token
// is not detected here and surfaces as a 401 from the gateway.
type Store struct {
	backend Backend
	mu      sync.RWMutex
	current domain.Session
}

// NewStore creates a store and restores any persisted session. Persisted
// content is trusted as-is; a broken backend read starts logged out.
func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}

	persisted, ok, err := backend.Load()
	if err != nil {
		logger.Warn("Failed to restore session, starting logged out", "error", err)
		return s
	}
	if ok {
		s.current = persisted
	}
	return s
}

// Login records a user session and persists it
func (s *Store) Login(user *domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.Session{Token: token, User: user}
	return s.backend.Save(s.current)
}

// LoginAdmin records an admin session. Admin login returns no user record,
// only a token and the admin flag.
func (s *Store) LoginAdmin(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.Session{Token: token, IsAdmin: true}
	return s.backend.Save(s.current)
}

// Logout clears the in-memory and persisted session
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.Session{}
	return s.backend.Clear()
}

// Current returns a copy of the session
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the bearer token, empty when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// IsLoggedIn reports whether a token is present
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token != ""
}

// IsAdmin reports whether the session was created by admin login
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAdmin
}

// Close releases the backend
func (s *Store) Close() error {
	return s.backend.Close()
}
