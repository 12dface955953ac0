// Package device issues and checks trusted-device tokens.
package device

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/dtroode/authgate/internal/model"
)

const (
	tokenSize         = 32
	unknownDescriptor = "Unknown device"
)

// Manager appends trusted devices to accounts and recognises them later.
type Manager struct {
	store  model.AccountStore
	now    func() time.Time
	random io.Reader
}

// NewManager creates a Manager persisting through store.
func NewManager(store model.AccountStore, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{store: store, now: now, random: rand.Reader}
}

// Issue creates a device token, records its digest on the account and
// saves it. The plaintext token is returned for the client only.
func (m *Manager) Issue(ctx context.Context, account *model.Account, descriptor string) (string, error) {
	raw := make([]byte, tokenSize)
	if _, err := io.ReadFull(m.random, raw); err != nil {
		return "", fmt.Errorf("failed to generate device token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	if descriptor == "" {
		descriptor = unknownDescriptor
	}

	account.TrustedDevices = append(account.TrustedDevices, model.TrustedDevice{
		TokenHash:  HashToken(token),
		Descriptor: descriptor,
		IssuedAt:   m.now(),
	})

	if err := m.store.Save(ctx, *account); err != nil {
		return "", fmt.Errorf("failed to save trusted device: %w", err)
	}

	return token, nil
}

// IsTrusted reports whether presented matches any device on the account.
func (m *Manager) IsTrusted(account model.Account, presented string) bool {
	if presented == "" {
		return false
	}
	hash := HashToken(presented)
	trusted := false
	for _, d := range account.TrustedDevices {
		if subtle.ConstantTimeCompare(d.TokenHash, hash) == 1 {
			trusted = true
		}
	}
	return trusted
}

// HashToken returns the stored form of a device token.
func HashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
