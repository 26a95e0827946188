package service

import (
	"context"

	"github.com/auracanvas/aura-api/internal/analysis"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository mocks the domain.SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) UpdateCredits(ctx context.Context, id uuid.UUID, credits int) error {
	args := m.Called(ctx, id, credits)
	return args.Error(0)
}

// MockAuraRepository mocks the domain.AuraRepository interface
type MockAuraRepository struct {
	mock.Mock
}

func (m *MockAuraRepository) Create(ctx context.Context, aura *domain.AuraReading) error {
	args := m.Called(ctx, aura)
	return args.Error(0)
}

func (m *MockAuraRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuraReading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuraReading), args.Error(1)
}

func (m *MockAuraRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.AuraReading, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuraReading), args.Error(1)
}

// MockArtifactStore mocks the domain.ArtifactStore interface
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockArtifactStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockAnalyzer mocks the analysis.Analyzer interface
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, req analysis.Request) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}
