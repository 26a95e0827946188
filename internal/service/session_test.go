package service

import (
	"context"
	"testing"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionService_Create(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionRepository)
	svc := NewSessionService(sessions, 1)

	sessions.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		session, err := svc.Create(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, session.Credits)
		assert.NotEmpty(t, session.Token)
		assert.False(t, seen[session.Token], "token %q issued twice", session.Token)
		seen[session.Token] = true
	}

	sessions.AssertNumberOfCalls(t, "Create", 10)
}

func TestSessionService_GetByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token short-circuits to nil", func(t *testing.T) {
		sessions := new(MockSessionRepository)
		svc := NewSessionService(sessions, 1)

		session, err := svc.GetByToken(ctx, "")
		assert.NoError(t, err)
		assert.Nil(t, session)
		sessions.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
	})

	t.Run("unknown token is nil, not an error", func(t *testing.T) {
		sessions := new(MockSessionRepository)
		svc := NewSessionService(sessions, 1)
		sessions.On("GetByToken", ctx, "nope").Return(nil, nil)

		session, err := svc.GetByToken(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("known token returns the session", func(t *testing.T) {
		sessions := new(MockSessionRepository)
		svc := NewSessionService(sessions, 1)
		stored := &domain.Session{Token: "tok", Credits: 1}
		sessions.On("GetByToken", ctx, "tok").Return(stored, nil)

		session, err := svc.GetByToken(ctx, "tok")
		assert.NoError(t, err)
		assert.Equal(t, stored, session)
	})
}
