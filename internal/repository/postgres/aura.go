package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuraRepository implements domain.AuraRepository
type AuraRepository struct {
	pool *pgxpool.Pool
}

// NewAuraRepository creates a new aura repository
func NewAuraRepository(db *DB) *AuraRepository {
	return &AuraRepository{pool: db.Pool}
}

func (r *AuraRepository) Create(ctx context.Context, aura *domain.AuraReading) error {
	answers, err := json.Marshal(aura.PersonalityAnswers)
	if err != nil {
		return fmt.Errorf("failed to marshal personality answers: %w", err)
	}

	query := `
		INSERT INTO auras (id, session_id, image_url, aura_color, aura_description, personality_answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		aura.ID,
		aura.SessionID,
		aura.ImageURL,
		aura.AuraColor,
		aura.AuraDescription,
		string(answers),
		aura.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create aura: %w", err)
	}
	return nil
}

// GetByID returns the reading, or nil when the id is unknown
func (r *AuraRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuraReading, error) {
	query := `
		SELECT id, session_id, image_url, aura_color, aura_description, personality_answers, created_at
		FROM auras
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	aura, err := scanAura(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
		WHERE session_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
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
	return auras, nil
}

func scanAura(row pgx.Row) (*domain.AuraReading, error) {
	var a domain.AuraReading
	var answers *string
	if err := row.Scan(
		&a.ID,
		&a.SessionID,
		&a.ImageURL,
		&a.AuraColor,
		&a.AuraDescription,
		&answers,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if answers != nil && *answers != "" {
		if err := json.Unmarshal([]byte(*answers), &a.PersonalityAnswers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal personality answers: %w", err)
		}
	}
	return &a, nil
}
