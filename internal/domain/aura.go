package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuraReading is one completed analysis. Records are immutable after creation;
// there is no update path.
type AuraReading struct {
	ID                 uuid.UUID         `json:"id"`
	SessionID          uuid.UUID         `json:"session_id"`
	ImageURL           string            `json:"image_url"`
	AuraColor          *AuraColor        `json:"aura_color"`
	AuraDescription    *string           `json:"aura_description"`
	PersonalityAnswers map[string]string `json:"personality_answers"`
	CreatedAt          time.Time         `json:"created_at"`
}

// AuraRepository defines the interface for aura reading storage
type AuraRepository interface {
	Create(ctx context.Context, aura *AuraReading) error
	GetByID(ctx context.Context, id uuid.UUID) (*AuraReading, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]AuraReading, error)
}

// ArtifactStore persists uploaded image blobs under opaque keys
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, string, error)
}

// AnalysisResult is the transient output of the analysis client, always
// validated against the color domain before use
type AnalysisResult struct {
	Color       AuraColor `json:"color"`
	Description string    `json:"description"`
}

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	ImageData string `json:"imageData" validate:"required"`
	Energy    string `json:"energy"`
	Element   string `json:"element"`
}

// AuraCreateRequest is the body of POST /aura
type AuraCreateRequest struct {
	ImageData          string            `json:"imageData" validate:"required"`
	PersonalityAnswers map[string]string `json:"personalityAnswers"`
}

// AuraView is the public shape of a reading returned by the aura endpoints
type AuraView struct {
	ID                 uuid.UUID         `json:"id"`
	ImageURL           string            `json:"imageUrl"`
	AuraColor          *AuraColor        `json:"auraColor"`
	AuraDescription    *string           `json:"auraDescription"`
	PersonalityAnswers map[string]string `json:"personalityAnswers,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// View returns the reading without its personality answers
func (a *AuraReading) View() AuraView {
	return AuraView{
		ID:              a.ID,
		ImageURL:        a.ImageURL,
		AuraColor:       a.AuraColor,
		AuraDescription: a.AuraDescription,
		CreatedAt:       a.CreatedAt,
	}
}

// DetailView returns the reading including its personality answers
func (a *AuraReading) DetailView() AuraView {
	v := a.View()
	v.PersonalityAnswers = a.PersonalityAnswers
	if v.PersonalityAnswers == nil {
		v.PersonalityAnswers = map[string]string{}
	}
	return v
}
