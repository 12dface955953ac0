package model

import "context"

// Notifier delivers one-time codes to account owners.
type Notifier interface {
	SendCode(ctx context.Context, email, code string) error
	SendResetCode(ctx context.Context, email, code string) error
}

// ExternalIdentity is an identity asserted by an external provider.
type ExternalIdentity struct {
	Email   string
	Subject string
}

// IdentityProvider verifies identity tokens issued by an external provider.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (ExternalIdentity, error)
}

// SecretHasher hashes and verifies passwords and one-time codes.
type SecretHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
