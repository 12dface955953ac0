package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authgate/internal/model"
)

// AuthService is a mock of the handler-facing authentication service.
type AuthService struct {
	mock.Mock
}

// NewAuthService creates an AuthService mock.
func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Register(ctx context.Context, params model.RegisterParams) (model.Profile, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, params model.LoginParams) (model.LoginResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.LoginResult), args.Error(1)
}

func (m *AuthService) VerifyOTP(ctx context.Context, params model.VerifyOTPParams) (model.VerifyOTPResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.VerifyOTPResult), args.Error(1)
}

func (m *AuthService) ResendOTP(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *AuthService) EnableTwoFactor(ctx context.Context, userID uuid.UUID, password string) error {
	return m.Called(ctx, userID, password).Error(0)
}

func (m *AuthService) ConfirmEnableTwoFactor(ctx context.Context, userID uuid.UUID, code string) error {
	return m.Called(ctx, userID, code).Error(0)
}

func (m *AuthService) DisableTwoFactor(ctx context.Context, userID uuid.UUID, password string) error {
	return m.Called(ctx, userID, password).Error(0)
}

func (m *AuthService) GoogleLogin(ctx context.Context, params model.GoogleLoginParams) (model.GoogleLoginResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.GoogleLoginResult), args.Error(1)
}

func (m *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *AuthService) ResetPassword(ctx context.Context, params model.ResetPasswordParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *AuthService) GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Settings), args.Error(1)
}

// AdminService is a mock of the handler-facing administrative service.
type AdminService struct {
	mock.Mock
}

// NewAdminService creates an AdminService mock.
func NewAdminService(t testingT) *AdminService {
	m := &AdminService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AdminService) ListAccounts(ctx context.Context) ([]model.AccountSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]model.AccountSummary)
	return summaries, args.Error(1)
}

func (m *AdminService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AdminService) DeleteAllAccounts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// TokenService is a mock of the session token resolver used by middleware.
type TokenService struct {
	mock.Mock
}

// NewTokenService creates a TokenService mock.
func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
