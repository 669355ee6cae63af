// Package session provides the server-side session store backing the
// login state. The browser cookie only carries a signed session id;
// all session state lives in the store, keyed by that id.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Session is the authenticated state attached to a request.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions keyed by session id. Implementations must be
// safe for concurrent use.
type Store interface {
	// Save persists the session for ttl. Saving an existing id
	// overwrites it and resets the ttl.
	Save(ctx context.Context, s *Session, ttl time.Duration) error

	// Get returns the session or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}

// New builds a session for a freshly authenticated user.
func New(userID int64, username, role string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}
}
