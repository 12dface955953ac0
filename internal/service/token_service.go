package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
)

// TokenService issues session tokens and resolves them back to accounts.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue creates a session for the profile.
func (s *TokenService) Issue(ctx context.Context, profile model.Profile) (model.Session, error) {
	token, expiresAt, err := s.manager.Issue(profile.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Token service: failed to issue session token",
			"user_id", profile.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	return model.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   profile,
	}, nil
}

// GetUserID returns the account id the session token was issued for.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	return s.manager.Parse(token)
}
