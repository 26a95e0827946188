package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionService handles anonymous visitor sessions
type SessionService struct {
	sessionRepo    domain.SessionRepository
	initialCredits int
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo domain.SessionRepository, initialCredits int) *SessionService {
	return &SessionService{
		sessionRepo:    sessionRepo,
		initialCredits: initialCredits,
	}
}

// Create allocates a new session with a fresh secret token and the initial
// credit balance
func (s *SessionService) Create(ctx context.Context) (*domain.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.New(),
		Token:     token,
		Credits:   s.initialCredits,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().Str("session_id", session.ID.String()).Msg("Session created")
	return session, nil
}

// GetByToken returns the session bound to the secret token, or nil when the
// token matches nothing. A first-time visitor has no session; that is not an
// error.
func (s *SessionService) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.sessionRepo.GetByToken(ctx, token)
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
