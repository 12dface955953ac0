package otp

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/authgate/internal/model"
	"github.com/dtroode/authgate/internal/secret"
	"github.com/dtroode/authgate/internal/testutil"
)

func newTestEngine(clock *testutil.Clock) *Engine {
	return NewEngine(secret.NewBcrypt(bcrypt.MinCost), WithClock(clock.Now))
}

func TestEngine_Generate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(testutil.NewClock(start))

	for i := 0; i < 20; i++ {
		code, pending, err := e.Generate(model.LoginCodeWindow)
		require.NoError(t, err)

		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, codeMin)
		assert.LessOrEqual(t, n, codeMax)

		assert.NotEqual(t, code, pending.Hash)
		assert.Equal(t, start.Add(5*time.Minute), pending.ExpiresAt)
	}
}

func TestEngine_Generate_ResetWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(testutil.NewClock(start))

	_, pending, err := e.Generate(model.ResetCodeWindow)
	require.NoError(t, err)
	assert.Equal(t, start.Add(10*time.Minute), pending.ExpiresAt)
}

func TestEngine_Generate_RandomFailure(t *testing.T) {
	t.Parallel()

	e := NewEngine(secret.NewBcrypt(bcrypt.MinCost), WithRandom(bytes.NewReader(nil)))

	_, _, err := e.Generate(model.LoginCodeWindow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate code")
}

func TestEngine_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		advance time.Duration
		submit  func(code string) string
		wantErr error
	}{
		{
			name:   "correct code inside window",
			submit: func(code string) string { return code },
		},
		{
			name:    "correct code just before expiry",
			advance: 5*time.Minute - time.Nanosecond,
			submit:  func(code string) string { return code },
		},
		{
			name:    "correct code at expiry",
			advance: 5 * time.Minute,
			submit:  func(code string) string { return code },
			wantErr: model.ErrCodeExpired,
		},
		{
			name:    "correct code after expiry",
			advance: 5*time.Minute + time.Second,
			submit:  func(code string) string { return code },
			wantErr: model.ErrCodeExpired,
		},
		{
			name:    "wrong code",
			submit:  func(code string) string { return "000000" },
			wantErr: model.ErrInvalidCode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clock := testutil.NewClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
			e := newTestEngine(clock)

			code, pending, err := e.Generate(model.LoginCodeWindow)
			require.NoError(t, err)

			clock.Advance(tt.advance)
			err = e.Verify(&pending, tt.submit(code))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, model.ErrInvalidCode)
		})
	}
}

func TestEngine_Verify_NoPendingCode(t *testing.T) {
	t.Parallel()

	e := newTestEngine(testutil.NewClock(time.Now()))

	err := e.Verify(nil, "123456")
	assert.ErrorIs(t, err, model.ErrNoPendingCode)
	assert.True(t, errors.Is(err, model.ErrInvalidCode))
}

type countingHasher struct {
	model.SecretHasher
	verifies int
}

func (c *countingHasher) Verify(plaintext, digest string) bool {
	c.verifies++
	return c.SecretHasher.Verify(plaintext, digest)
}

func TestEngine_Verify_ExpiryBeforeHash(t *testing.T) {
	t.Parallel()

	clock := testutil.NewClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	h := &countingHasher{SecretHasher: secret.NewBcrypt(bcrypt.MinCost)}
	e := NewEngine(h, WithClock(clock.Now))

	code, pending, err := e.Generate(model.LoginCodeWindow)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	assert.ErrorIs(t, e.Verify(&pending, code), model.ErrCodeExpired)
	assert.Zero(t, h.verifies)
}
