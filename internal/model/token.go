package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager issues and validates session tokens.
type TokenManager interface {
	Issue(userID uuid.UUID) (token string, expiresAt time.Time, err error)
	Parse(token string) (uuid.UUID, error)
}
