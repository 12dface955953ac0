package mocks

import (
	"context"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authgate/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

var (
	_ model.Notifier         = (*Notifier)(nil)
	_ model.IdentityProvider = (*IdentityProvider)(nil)
	_ model.TokenManager     = (*TokenManager)(nil)
	_ model.ContextManager   = (*ContextManager)(nil)
	_ model.SecurityLayer    = (*SecurityLayer)(nil)
)

// Notifier is a mock of model.Notifier.
type Notifier struct {
	mock.Mock
}

// NewNotifier creates a Notifier mock.
func NewNotifier(t testingT) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) SendCode(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

func (m *Notifier) SendResetCode(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

// IdentityProvider is a mock of model.IdentityProvider.
type IdentityProvider struct {
	mock.Mock
}

// NewIdentityProvider creates an IdentityProvider mock.
func NewIdentityProvider(t testingT) *IdentityProvider {
	m := &IdentityProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *IdentityProvider) Verify(ctx context.Context, token string) (model.ExternalIdentity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.ExternalIdentity), args.Error(1)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

// NewTokenManager creates a TokenManager mock.
func NewTokenManager(t testingT) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenManager) Issue(userID uuid.UUID) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *TokenManager) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// ContextManager is a mock of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

// NewContextManager creates a ContextManager mock.
func NewContextManager(t testingT) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ContextManager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return m.Called(ctx, userID).Get(0).(context.Context)
}

func (m *ContextManager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID), args.Bool(1)
}

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

// NewSecurityLayer creates a SecurityLayer mock.
func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	ln, _ := args.Get(0).(net.Listener)
	return ln, args.Error(1)
}
