package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{pool: db.Pool}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, session_token, credits, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.Token,
		session.Credits,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken returns the session matching the secret token, or nil when no
// session matches. Absence is a normal case, not an error.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT id, session_token, credits, created_at
		FROM sessions
		WHERE session_token = $1
	`
	var s domain.Session
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&s.ID,
		&s.Token,
		&s.Credits,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// UpdateCredits overwrites the credit balance unconditionally
func (r *SessionRepository) UpdateCredits(ctx context.Context, id uuid.UUID, credits int) error {
	query := `UPDATE sessions SET credits = $1 WHERE id = $2`
	_, err := r.pool.Exec(ctx, query, credits, id)
	if err != nil {
		return fmt.Errorf("failed to update credits: %w", err)
	}
	return nil
}
