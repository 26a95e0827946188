package service

import (
	"context"
	"fmt"
	"time"

	"github.com/auracanvas/aura-api/internal/analysis"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultEnergy  = "Good"
	defaultElement = "Energy"

	// fallbackDescription accompanies the fallback color whenever the model
	// call fails
	fallbackDescription = "A unique and vibrant soul with endless potential."
)

// AuraService orchestrates the aura reading pipeline: input validation, model
// invocation with fallback, image upload, record creation and credit debit.
type AuraService struct {
	sessionRepo domain.SessionRepository
	auraRepo    domain.AuraRepository
	artifacts   domain.ArtifactStore
	analyzer    analysis.Analyzer
}

// NewAuraService creates a new aura service
func NewAuraService(
	sessionRepo domain.SessionRepository,
	auraRepo domain.AuraRepository,
	artifacts domain.ArtifactStore,
	analyzer analysis.Analyzer,
) *AuraService {
	return &AuraService{
		sessionRepo: sessionRepo,
		auraRepo:    auraRepo,
		artifacts:   artifacts,
		analyzer:    analyzer,
	}
}

// AnalyzeOnly runs the stateless preview path: no session, no credit check,
// no persistence. The caller always receives a usable result; a failed model
// call yields the fallback, never an error.
func (s *AuraService) AnalyzeOnly(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if req.ImageData == "" {
		return nil, domain.ErrImageDataRequired
	}
	return s.analyzeWithFallback(ctx, req.ImageData, req.Energy, req.Element), nil
}

// CreateAura runs the full path: resolve session, gate on credits, analyze,
// upload the image, create the reading, debit one credit. Side effects are
// strictly ordered upload -> record -> debit with no compensation; a debit
// failure after record creation leaves the reading in place.
//
// The credit check and the debit are two separate store calls; two concurrent
// creates on a one-credit session can both succeed. That matches the original
// behavior and is left as is.
func (s *AuraService) CreateAura(ctx context.Context, token string, req domain.AuraCreateRequest) (*domain.AuraReading, int, error) {
	if token == "" {
		return nil, 0, domain.ErrNoSession
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve session: %w", err)
	}
	if session == nil {
		return nil, 0, domain.ErrInvalidSession
	}

	if session.Credits < 1 {
		return nil, 0, domain.ErrNoCredits
	}

	if req.ImageData == "" {
		return nil, 0, domain.ErrImageDataRequired
	}

	energy := req.PersonalityAnswers["energy"]
	element := req.PersonalityAnswers["element"]
	result := s.analyzeWithFallback(ctx, req.ImageData, energy, element)

	imageBytes, contentType, err := analysis.DecodeDataURL(req.ImageData)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	imageKey := fmt.Sprintf("auras/%s.jpg", uuid.New().String())
	if err := s.artifacts.Put(ctx, imageKey, imageBytes, contentType); err != nil {
		return nil, 0, fmt.Errorf("failed to upload image: %w", err)
	}

	answers := req.PersonalityAnswers
	if answers == nil {
		answers = map[string]string{}
	}

	aura := &domain.AuraReading{
		ID:                 uuid.New(),
		SessionID:          session.ID,
		ImageURL:           imageKey,
		AuraColor:          &result.Color,
		AuraDescription:    &result.Description,
		PersonalityAnswers: answers,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.auraRepo.Create(ctx, aura); err != nil {
		return nil, 0, fmt.Errorf("failed to create aura: %w", err)
	}

	remaining := session.Credits - 1
	if err := s.sessionRepo.UpdateCredits(ctx, session.ID, remaining); err != nil {
		return nil, 0, fmt.Errorf("failed to debit credit: %w", err)
	}

	log.Info().
		Str("aura_id", aura.ID.String()).
		Str("session_id", session.ID.String()).
		Str("color", string(result.Color)).
		Int("credits", remaining).
		Msg("Aura created")

	return aura, remaining, nil
}

// GetAura fetches one reading by id; nil means unknown id
func (s *AuraService) GetAura(ctx context.Context, id uuid.UUID) (*domain.AuraReading, error) {
	return s.auraRepo.GetByID(ctx, id)
}

// ListAuras returns the readings owned by the token's session, newest first
func (s *AuraService) ListAuras(ctx context.Context, token string) ([]domain.AuraReading, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrInvalidSession
	}

	return s.auraRepo.ListBySession(ctx, session.ID)
}

// analyzeWithFallback is the single analysis routine shared by AnalyzeOnly
// and CreateAura: it applies the label defaults and substitutes the fixed
// fallback result when the model call fails
func (s *AuraService) analyzeWithFallback(ctx context.Context, imageData, energy, element string) *domain.AnalysisResult {
	if energy == "" {
		energy = defaultEnergy
	}
	if element == "" {
		element = defaultElement
	}

	result, err := s.analyzer.Analyze(ctx, analysis.Request{
		ImageData: imageData,
		Energy:    energy,
		Element:   element,
	})
	if err != nil {
		log.Error().Err(err).Msg("Analysis failed, using fallback result")
		return &domain.AnalysisResult{
			Color:       domain.FallbackColor,
			Description: fallbackDescription,
		}
	}
	return result
}
