package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// LoginCodeWindow is the lifetime of 2FA login and 2FA-enable codes.
	LoginCodeWindow = 5 * time.Minute
	// ResetCodeWindow is the lifetime of password reset codes.
	ResetCodeWindow = 10 * time.Minute
	// SessionDuration is the validity of issued session tokens.
	SessionDuration = 30 * 24 * time.Hour
	// TrustedDeviceMaxAge is the lifetime of the device credential on the client.
	TrustedDeviceMaxAge = 30 * 24 * time.Hour
)

// PendingCode is an outstanding one-time code. A nil *PendingCode means
// no code is outstanding, so hash and expiry are always set together.
type PendingCode struct {
	Hash      string
	ExpiresAt time.Time
}

// Session is the result of a completed authentication.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Profile   Profile
}

// LoginResult is the outcome of the credential step of a login.
// Either Session is set, or RequireOTP is true and UserID names the
// account awaiting a code.
type LoginResult struct {
	Session    *Session
	RequireOTP bool
	UserID     uuid.UUID
}

// VerifyOTPResult is the outcome of the code step of a login.
type VerifyOTPResult struct {
	Session           Session
	DeviceToken       string
	DeviceTokenMaxAge time.Duration
}

// GoogleLoginResult is the outcome of a federated login.
// NeedsProfile is set when no account exists and no credentials were given.
type GoogleLoginResult struct {
	Session      *Session
	NeedsProfile bool
	Email        string
	ExternalID   string
}
