package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
)

// AuraRepository implements domain.AuraRepository on sqlite
type AuraRepository struct {
	db *DB
}

// NewAuraRepository creates a new aura repository
func NewAuraRepository(db *DB) *AuraRepository {
	return &AuraRepository{db: db}
}

func (r *AuraRepository) Create(ctx context.Context, aura *domain.AuraReading) error {
	answers, err := json.Marshal(aura.PersonalityAnswers)
	if err != nil {
		return fmt.Errorf("failed to marshal personality answers: %w", err)
	}

	var color, description *string
	if aura.AuraColor != nil {
		c := string(*aura.AuraColor)
		color = &c
	}
	if aura.AuraDescription != nil {
		description = aura.AuraDescription
	}

	query := `
		INSERT INTO auras (id, session_id, image_url, aura_color, aura_description, personality_answers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.conn.ExecContext(ctx, query,
		aura.ID.String(),
		aura.SessionID.String(),
		aura.ImageURL,
		color,
		description,
		string(answers),
		aura.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create aura: %w", err)
	}
	return nil
}

func (r *AuraRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuraReading, error) {
	query := `
		SELECT id, session_id, image_url, aura_color, aura_description, personality_answers, created_at
		FROM auras
		WHERE id = ?
	`
	aura, err := scanAura(r.db.conn.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get aura: %w", err)
	}
	return aura, nil
}

func (r *AuraRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.AuraReading, error) {
	query := `
		SELECT id, session_id, image_url, aura_color, aura_description, personality_answers, created_at
		FROM auras
		WHERE session_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.conn.QueryContext(ctx, query, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list auras: %w", err)
	}
	defer rows.Close()

	var auras []domain.AuraReading
	for rows.Next() {
		aura, err := scanAura(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aura: %w", err)
		}
		auras = append(auras, *aura)
	}
	return auras, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAura(row rowScanner) (*domain.AuraReading, error) {
	var a domain.AuraReading
	var id, sessionID string
	var color, description, answers *string

	if err := row.Scan(&id, &sessionID, &a.ImageURL, &color, &description, &answers, &a.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if a.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("failed to parse aura id: %w", err)
	}
	if a.SessionID, err = uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("failed to parse session id: %w", err)
	}
	if color != nil {
		c := domain.AuraColor(*color)
		a.AuraColor = &c
	}
	a.AuraDescription = description
	if answers != nil && *answers != "" {
		if err := json.Unmarshal([]byte(*answers), &a.PersonalityAnswers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal personality answers: %w", err)
		}
	}
	return &a, nil
}
