package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/auracanvas/aura-api/internal/analysis"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testImageData = "data:image/jpeg;base64,ZmFrZQ==" // "fake"

func newTestAuraService() (*AuraService, *MockSessionRepository, *MockAuraRepository, *MockArtifactStore, *MockAnalyzer) {
	sessions := new(MockSessionRepository)
	auras := new(MockAuraRepository)
	artifacts := new(MockArtifactStore)
	analyzer := new(MockAnalyzer)
	return NewAuraService(sessions, auras, artifacts, analyzer), sessions, auras, artifacts, analyzer
}

func TestAuraService_AnalyzeOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("missing image data", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuraService()

		_, err := svc.AnalyzeOnly(ctx, domain.AnalyzeRequest{})
		assert.ErrorIs(t, err, domain.ErrImageDataRequired)
	})

	t.Run("labels default when empty", func(t *testing.T) {
		svc, _, _, _, analyzer := newTestAuraService()
		analyzer.On("Analyze", ctx, analysis.Request{
			ImageData: testImageData,
			Energy:    "Good",
			Element:   "Energy",
		}).Return(&domain.AnalysisResult{Color: domain.ColorBlue, Description: "calm"}, nil)

		result, err := svc.AnalyzeOnly(ctx, domain.AnalyzeRequest{ImageData: testImageData})
		assert.NoError(t, err)
		assert.Equal(t, domain.ColorBlue, result.Color)
		analyzer.AssertExpectations(t)
	})

	t.Run("labels pass through when set", func(t *testing.T) {
		svc, _, _, _, analyzer := newTestAuraService()
		analyzer.On("Analyze", ctx, analysis.Request{
			ImageData: testImageData,
			Energy:    "High",
			Element:   "Fire",
		}).Return(&domain.AnalysisResult{Color: domain.ColorRed, Description: "bold"}, nil)

		result, err := svc.AnalyzeOnly(ctx, domain.AnalyzeRequest{
			ImageData: testImageData,
			Energy:    "High",
			Element:   "Fire",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ColorRed, result.Color)
		analyzer.AssertExpectations(t)
	})

	t.Run("analyzer failure yields fallback, not an error", func(t *testing.T) {
		svc, _, _, _, analyzer := newTestAuraService()
		analyzer.On("Analyze", ctx, mock.Anything).
			Return(nil, &domain.AnalysisError{Err: errors.New("upstream 500")})

		result, err := svc.AnalyzeOnly(ctx, domain.AnalyzeRequest{ImageData: testImageData})
		assert.NoError(t, err)
		assert.Equal(t, domain.FallbackColor, result.Color)
		assert.NotEmpty(t, result.Description)
	})
}

func TestAuraService_CreateAura(t *testing.T) {
	ctx := context.Background()

	session := func(credits int) *domain.Session {
		return &domain.Session{ID: uuid.New(), Token: "tok", Credits: credits}
	}

	t.Run("missing token", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuraService()

		_, _, err := svc.CreateAura(ctx, "", domain.AuraCreateRequest{ImageData: testImageData})
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, sessions, _, _, _ := newTestAuraService()
		sessions.On("GetByToken", ctx, "stale").Return(nil, nil)

		_, _, err := svc.CreateAura(ctx, "stale", domain.AuraCreateRequest{ImageData: testImageData})
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("no credits performs no side effects", func(t *testing.T) {
		svc, sessions, auras, artifacts, analyzer := newTestAuraService()
		sessions.On("GetByToken", ctx, "tok").Return(session(0), nil)

		_, _, err := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{ImageData: testImageData})
		assert.ErrorIs(t, err, domain.ErrNoCredits)

		analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
		artifacts.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		auras.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "UpdateCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing image data after credit gate", func(t *testing.T) {
		svc, sessions, _, artifacts, _ := newTestAuraService()
		sessions.On("GetByToken", ctx, "tok").Return(session(1), nil)

		_, _, err := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{})
		assert.ErrorIs(t, err, domain.ErrImageDataRequired)
		artifacts.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success uploads once, records once, debits to zero", func(t *testing.T) {
		svc, sessions, auras, artifacts, analyzer := newTestAuraService()
		sess := session(1)
		answers := map[string]string{"energy": "High", "element": "Fire"}

		sessions.On("GetByToken", ctx, "tok").Return(sess, nil)
		analyzer.On("Analyze", ctx, analysis.Request{
			ImageData: testImageData,
			Energy:    "High",
			Element:   "Fire",
		}).Return(&domain.AnalysisResult{Color: domain.ColorOrange, Description: "adventurous"}, nil)
		artifacts.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return len(key) > 0 && key[:6] == "auras/"
		}), []byte("fake"), "image/jpeg").Return(nil).Once()
		auras.On("Create", ctx, mock.AnythingOfType("*domain.AuraReading")).Return(nil).Once()
		sessions.On("UpdateCredits", ctx, sess.ID, 0).Return(nil).Once()

		aura, credits, err := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{
			ImageData:          testImageData,
			PersonalityAnswers: answers,
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, credits)
		assert.Equal(t, sess.ID, aura.SessionID)
		assert.Equal(t, domain.ColorOrange, *aura.AuraColor)
		assert.Equal(t, "adventurous", *aura.AuraDescription)
		assert.Equal(t, answers, aura.PersonalityAnswers)

		sessions.AssertExpectations(t)
		auras.AssertExpectations(t)
		artifacts.AssertExpectations(t)
		analyzer.AssertExpectations(t)
	})

	t.Run("analyzer failure still persists the fallback reading", func(t *testing.T) {
		svc, sessions, auras, artifacts, analyzer := newTestAuraService()
		sess := session(3)

		sessions.On("GetByToken", ctx, "tok").Return(sess, nil)
		analyzer.On("Analyze", ctx, mock.Anything).
			Return(nil, &domain.AnalysisError{Err: errors.New("timeout")})
		artifacts.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		auras.On("Create", ctx, mock.AnythingOfType("*domain.AuraReading")).Return(nil)
		sessions.On("UpdateCredits", ctx, sess.ID, 2).Return(nil)

		aura, credits, err := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{ImageData: testImageData})
		assert.NoError(t, err)
		assert.Equal(t, 2, credits)
		assert.Equal(t, domain.FallbackColor, *aura.AuraColor)
		assert.NotEmpty(t, *aura.AuraDescription)
	})

	t.Run("upload failure stops before record and debit", func(t *testing.T) {
		svc, sessions, auras, artifacts, analyzer := newTestAuraService()
		sess := session(1)

		sessions.On("GetByToken", ctx, "tok").Return(sess, nil)
		analyzer.On("Analyze", ctx, mock.Anything).
			Return(&domain.AnalysisResult{Color: domain.ColorPink, Description: "warm"}, nil)
		artifacts.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(fmt.Errorf("bucket unavailable"))

		_, _, err := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{ImageData: testImageData})
		assert.Error(t, err)
		auras.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "UpdateCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	// The credit check and the debit are separate store calls by design. With
	// a one-credit session, two requests that both pass the check before
	// either debits will both succeed; this documents that behavior rather
	// than asserting it away.
	t.Run("two sequential creates on one credit both pass the stale check", func(t *testing.T) {
		svc, sessions, auras, artifacts, analyzer := newTestAuraService()
		sess := session(1)

		// Both requests observe credits == 1
		sessions.On("GetByToken", ctx, "tok").Return(sess, nil).Twice()
		analyzer.On("Analyze", ctx, mock.Anything).
			Return(&domain.AnalysisResult{Color: domain.ColorWhite, Description: "clear"}, nil).Twice()
		artifacts.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
		auras.On("Create", ctx, mock.AnythingOfType("*domain.AuraReading")).Return(nil).Twice()
		sessions.On("UpdateCredits", ctx, sess.ID, 0).Return(nil).Twice()

		_, _, err1 := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{ImageData: testImageData})
		_, _, err2 := svc.CreateAura(ctx, "tok", domain.AuraCreateRequest{ImageData: testImageData})
		assert.NoError(t, err1)
		assert.NoError(t, err2)

		// Two readings granted, the balance written to zero twice
		auras.AssertNumberOfCalls(t, "Create", 2)
		sessions.AssertNumberOfCalls(t, "UpdateCredits", 2)
	})
}

func TestAuraService_GetAura(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is nil, not an error", func(t *testing.T) {
		svc, _, auras, _, _ := newTestAuraService()
		id := uuid.New()
		auras.On("GetByID", ctx, id).Return(nil, nil)

		aura, err := svc.GetAura(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, aura)
	})

	t.Run("answers round-trip", func(t *testing.T) {
		svc, _, auras, _, _ := newTestAuraService()
		id := uuid.New()
		color := domain.ColorYellow
		stored := &domain.AuraReading{
			ID:                 id,
			AuraColor:          &color,
			PersonalityAnswers: map[string]string{"energy": "High", "element": "Fire"},
		}
		auras.On("GetByID", ctx, id).Return(stored, nil)

		aura, err := svc.GetAura(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, map[string]string{"energy": "High", "element": "Fire"}, aura.PersonalityAnswers)
	})
}

func TestAuraService_ListAuras(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuraService()
		_, err := svc.ListAuras(ctx, "")
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("returns the session's readings", func(t *testing.T) {
		svc, sessions, auras, _, _ := newTestAuraService()
		sess := &domain.Session{ID: uuid.New(), Token: "tok", Credits: 0}
		sessions.On("GetByToken", ctx, "tok").Return(sess, nil)
		auras.On("ListBySession", ctx, sess.ID).Return([]domain.AuraReading{{ID: uuid.New()}}, nil)

		readings, err := svc.ListAuras(ctx, "tok")
		assert.NoError(t, err)
		assert.Len(t, readings, 1)
	})
}
