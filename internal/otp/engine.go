// Package otp generates and verifies six-digit one-time codes.
//
// The engine does not remember which codes were consumed. Callers clear
// model.Account.PendingCode after a successful verification.
package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dtroode/authgate/internal/model"
)

const (
	codeMin = 100000
	codeMax = 999999
)

var codeSpan = big.NewInt(codeMax - codeMin + 1)

// Engine issues and checks one-time codes.
type Engine struct {
	hasher model.SecretHasher
	now    func() time.Time
	random io.Reader
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandom overrides the randomness source.
func WithRandom(r io.Reader) Option {
	return func(e *Engine) { e.random = r }
}

// NewEngine creates an Engine hashing codes with hasher.
func NewEngine(hasher model.SecretHasher, opts ...Option) *Engine {
	e := &Engine{
		hasher: hasher,
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate creates a code valid for window and returns the plaintext
// together with the pending record to store on the account.
func (e *Engine) Generate(window time.Duration) (string, model.PendingCode, error) {
	n, err := rand.Int(e.random, codeSpan)
	if err != nil {
		return "", model.PendingCode{}, fmt.Errorf("failed to generate code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+codeMin)

	hash, err := e.hasher.Hash(code)
	if err != nil {
		return "", model.PendingCode{}, fmt.Errorf("failed to hash code: %w", err)
	}

	return code, model.PendingCode{
		Hash:      hash,
		ExpiresAt: e.now().Add(window),
	}, nil
}

// Verify checks submitted against pending. Expiry is checked before the
// hash, so an expired code is rejected even when it is correct.
func (e *Engine) Verify(pending *model.PendingCode, submitted string) error {
	if pending == nil {
		return model.ErrNoPendingCode
	}
	if !e.now().Before(pending.ExpiresAt) {
		return model.ErrCodeExpired
	}
	if !e.hasher.Verify(submitted, pending.Hash) {
		return model.ErrInvalidCode
	}
	return nil
}
