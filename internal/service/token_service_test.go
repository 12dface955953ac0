package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authgate/internal/mocks"
	"github.com/dtroode/authgate/internal/model"
	"github.com/dtroode/authgate/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profile := model.Profile{ID: uuid.New(), Name: "alice", Email: "alice@gmail.com"}
	expiresAt := time.Now().Add(model.SessionDuration)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		manager := mocks.NewTokenManager(t)
		manager.On("Issue", profile.ID).Return("token", expiresAt, nil).Once()

		svc := NewTokenService(manager, testutil.MakeNoopLogger())
		session, err := svc.Issue(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, model.Session{Token: "token", ExpiresAt: expiresAt, Profile: profile}, session)
	})

	t.Run("manager error", func(t *testing.T) {
		t.Parallel()

		manager := mocks.NewTokenManager(t)
		manager.On("Issue", profile.ID).Return("", time.Time{}, errors.New("boom")).Once()

		svc := NewTokenService(manager, testutil.MakeNoopLogger())
		_, err := svc.Issue(ctx, profile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to issue session token")
	})
}

func TestTokenService_GetUserID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	manager := mocks.NewTokenManager(t)
	manager.On("Parse", "good").Return(userID, nil).Once()
	manager.On("Parse", "bad").Return(uuid.Nil, errors.New("invalid token")).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	got, err := svc.GetUserID(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.GetUserID(context.Background(), "bad")
	assert.Error(t, err)
}
