// internal/store/store.go
//
// Session registry for the HTTP assist facade.
// A Session couples one solver controller with a registry identity and a
// mutex, so each controller is only ever driven by one request at a time
// and the solver core itself stays lock-free.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/vmizener/nyt/internal/session"
)

// ErrNotFound reports a lookup for an unknown session ID.
var ErrNotFound = errors.New("session not found")

// Session is one registered solver session.
type Session struct {
	ID         string
	Controller *session.Controller

	mu sync.Mutex
}

// NewSession wraps a controller with a fresh random identity.
func NewSession(ctrl *session.Controller) *Session {
	return &Session{ID: newID(), Controller: ctrl}
}

// Lock serializes access to the controller for one request.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the controller.
func (s *Session) Unlock() { s.mu.Unlock() }

// Store defines the registry interface for solver sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session is unknown.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session by ID. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id string) error
}

// newID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
