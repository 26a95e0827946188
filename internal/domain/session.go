package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session identifies an anonymous visitor. The token is the only client-facing
// handle; the id never leaves the server except inside response bodies.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"-"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)

	// UpdateCredits overwrites the credit balance unconditionally. Callers
	// compute current-1 and must have checked current >= 1 first; the check
	// and the write are deliberately not one atomic operation.
	UpdateCredits(ctx context.Context, id uuid.UUID, credits int) error
}

// SessionView is the public shape returned by the session endpoints
type SessionView struct {
	ID        uuid.UUID `json:"id"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}

// View returns the session without its secret token
func (s *Session) View() SessionView {
	return SessionView{ID: s.ID, Credits: s.Credits, CreatedAt: s.CreatedAt}
}
