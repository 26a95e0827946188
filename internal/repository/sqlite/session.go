package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
)

// SessionRepository implements domain.SessionRepository on sqlite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (id, session_token, credits, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.conn.ExecContext(ctx, query,
		session.ID.String(),
		session.Token,
		session.Credits,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT id, session_token, credits, created_at FROM sessions WHERE session_token = ?`

	var s domain.Session
	var id string
	err := r.db.conn.QueryRowContext(ctx, query, token).Scan(&id, &s.Token, &s.Credits, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session id: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) UpdateCredits(ctx context.Context, id uuid.UUID, credits int) error {
	query := `UPDATE sessions SET credits = ? WHERE id = ?`
	_, err := r.db.conn.ExecContext(ctx, query, credits, id.String())
	if err != nil {
		return fmt.Errorf("failed to update credits: %w", err)
	}
	return nil
}
