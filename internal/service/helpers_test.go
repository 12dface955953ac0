package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/authgate/internal/device"
	"github.com/dtroode/authgate/internal/mocks"
	"github.com/dtroode/authgate/internal/model"
	"github.com/dtroode/authgate/internal/otp"
	"github.com/dtroode/authgate/internal/policy"
	"github.com/dtroode/authgate/internal/repository/memory"
	"github.com/dtroode/authgate/internal/secret"
	"github.com/dtroode/authgate/internal/testutil"
	"github.com/dtroode/authgate/internal/token"
)

var testStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// outbox records the last code sent to each address.
type outbox struct {
	mu     sync.Mutex
	codes  map[string]string
	resets map[string]string
	sent   int
	err    error
}

func newOutbox() *outbox {
	return &outbox{codes: make(map[string]string), resets: make(map[string]string)}
}

func (o *outbox) SendCode(_ context.Context, email, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent++
	o.codes[email] = code
	return o.err
}

func (o *outbox) SendResetCode(_ context.Context, email, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent++
	o.resets[email] = code
	return o.err
}

func (o *outbox) code(email string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.codes[email]
}

func (o *outbox) reset(email string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resets[email]
}

type harness struct {
	auth     *Auth
	admin    *Admin
	store    *memory.AccountRepository
	outbox   *outbox
	clock    *testutil.Clock
	identity *mocks.IdentityProvider
	hasher   model.SecretHasher
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clock := testutil.NewClock(testStart)
	store := memory.NewAccountRepository()
	hasher := secret.NewBcrypt(bcrypt.MinCost)
	box := newOutbox()
	identity := mocks.NewIdentityProvider(t)
	log := testutil.MakeNoopLogger()

	tokens := NewTokenService(token.NewJWT("test-secret").WithClock(clock.Now), log)
	a := NewAuth(
		store,
		hasher,
		otp.NewEngine(hasher, otp.WithClock(clock.Now)),
		device.NewManager(store, clock.Now),
		tokens,
		box,
		identity,
		policy.New(nil),
		log,
	)
	a.now = clock.Now

	return &harness{
		auth:     a,
		admin:    NewAdmin(store, log),
		store:    store,
		outbox:   box,
		clock:    clock,
		identity: identity,
		hasher:   hasher,
	}
}

// register creates alice and returns her profile.
func (h *harness) register(t *testing.T) model.Profile {
	t.Helper()
	profile, err := h.auth.Register(context.Background(), model.RegisterParams{
		Name:     "alice",
		Email:    "alice@gmail.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return profile
}
