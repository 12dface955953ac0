package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authgate/internal/device"
	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
	"github.com/dtroode/authgate/internal/otp"
	"github.com/dtroode/authgate/internal/policy"
)

// dummyPassword is hashed once at startup so unknown identifiers cost the
// same bcrypt comparison as wrong passwords.
const dummyPassword = "authgate-dummy-password"

type Auth struct {
	accounts     model.AccountStore
	hasher       model.SecretHasher
	codes        *otp.Engine
	devices      *device.Manager
	tokenService *TokenService
	notifier     model.Notifier
	identity     model.IdentityProvider
	policy       *policy.Policy
	logger       *logger.Logger
	dummyHash    string
	now          func() time.Time
}

func NewAuth(
	accounts model.AccountStore,
	hasher model.SecretHasher,
	codes *otp.Engine,
	devices *device.Manager,
	tokenService *TokenService,
	notifier model.Notifier,
	identity model.IdentityProvider,
	policy *policy.Policy,
	logger *logger.Logger,
) *Auth {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Warn("Auth service: failed to prepare dummy hash", "error", err.Error())
	}

	return &Auth{
		accounts:     accounts,
		hasher:       hasher,
		codes:        codes,
		devices:      devices,
		tokenService: tokenService,
		notifier:     notifier,
		identity:     identity,
		policy:       policy,
		logger:       logger,
		dummyHash:    dummyHash,
		now:          time.Now,
	}
}

// Register creates a manual account.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.Profile, error) {
	a.logger.DebugContext(ctx, "Auth service: registering account",
		"name", params.Name,
		"email", params.Email)

	if err := policy.RequireFields("name", params.Name, "email", params.Email, "password", params.Password); err != nil {
		return model.Profile{}, err
	}
	if err := a.policy.ValidatePassword(params.Password); err != nil {
		return model.Profile{}, err
	}
	if err := a.policy.ValidateEmail(params.Email); err != nil {
		return model.Profile{}, err
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to hash password",
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	account, err := a.accounts.Create(ctx, model.Account{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		LoginMethod:  model.LoginMethodManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		var dup *model.DuplicateError
		if errors.As(err, &dup) {
			a.logger.InfoContext(ctx, "Auth service: account already exists",
				"field", dup.Field)
			return model.Profile{}, err
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to create account",
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to create account: %w", err)
	}

	a.logger.InfoContext(ctx, "Auth service: account registered",
		"user_id", account.ID)

	return account.Profile(), nil
}

// Login checks the credentials. A presented trusted-device token skips
// the code step; otherwise a code is sent and RequireOTP is returned.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.LoginResult, error) {
	a.logger.DebugContext(ctx, "Auth service: login attempt",
		"identifier", params.Identifier)

	account, err := a.accounts.GetByNameOrEmail(ctx, params.Identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.hasher.Verify(params.Password, a.dummyHash)
			a.logger.InfoContext(ctx, "Auth service: login rejected",
				"reason", "unknown identifier")
			return model.LoginResult{}, model.ErrInvalidCredentials
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to get account",
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to get account: %w", err)
	}

	if !a.hasher.Verify(params.Password, account.PasswordHash) {
		a.logger.InfoContext(ctx, "Auth service: login rejected",
			"user_id", account.ID,
			"reason", "wrong password")
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	if a.devices.IsTrusted(account, params.DeviceToken) {
		session, err := a.tokenService.Issue(ctx, account.Profile())
		if err != nil {
			return model.LoginResult{}, err
		}
		a.logger.InfoContext(ctx, "Auth service: login via trusted device",
			"user_id", account.ID)
		return model.LoginResult{Session: &session}, nil
	}

	if err := a.issueCode(ctx, &account, model.LoginCodeWindow, a.notifier.SendCode); err != nil {
		return model.LoginResult{}, err
	}

	a.logger.InfoContext(ctx, "Auth service: login code sent",
		"user_id", account.ID)

	return model.LoginResult{RequireOTP: true, UserID: account.ID}, nil
}

// VerifyOTP completes a login with the emailed code. With RememberDevice
// a trusted-device token is issued as well.
func (a *Auth) VerifyOTP(ctx context.Context, params model.VerifyOTPParams) (model.VerifyOTPResult, error) {
	a.logger.DebugContext(ctx, "Auth service: verifying login code",
		"user_id", params.UserID)

	account, err := a.getAccount(ctx, params.UserID)
	if err != nil {
		return model.VerifyOTPResult{}, err
	}

	if err := a.codes.Verify(account.PendingCode, params.Code); err != nil {
		a.logger.InfoContext(ctx, "Auth service: login code rejected",
			"user_id", account.ID,
			"error", err.Error())
		return model.VerifyOTPResult{}, err
	}

	account.ClearPendingCode()

	var result model.VerifyOTPResult
	if params.RememberDevice {
		// Issue saves the account, cleared code included.
		token, err := a.devices.Issue(ctx, &account, params.DeviceDescriptor)
		if err != nil {
			a.logger.ErrorContext(ctx, "Auth service: failed to issue device token",
				"user_id", account.ID,
				"error", err.Error())
			return model.VerifyOTPResult{}, err
		}
		result.DeviceToken = token
		result.DeviceTokenMaxAge = model.TrustedDeviceMaxAge
	} else if err := a.save(ctx, account); err != nil {
		return model.VerifyOTPResult{}, err
	}

	session, err := a.tokenService.Issue(ctx, account.Profile())
	if err != nil {
		return model.VerifyOTPResult{}, err
	}
	result.Session = session

	a.logger.InfoContext(ctx, "Auth service: login completed",
		"user_id", account.ID,
		"remember_device", params.RememberDevice)

	return result, nil
}

// ResendOTP replaces the outstanding login code with a fresh one.
func (a *Auth) ResendOTP(ctx context.Context, userID uuid.UUID) error {
	account, err := a.getAccount(ctx, userID)
	if err != nil {
		return err
	}

	if err := a.issueCode(ctx, &account, model.LoginCodeWindow, a.notifier.SendCode); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Auth service: login code resent",
		"user_id", account.ID)

	return nil
}

// EnableTwoFactor re-checks the password and sends a confirmation code.
// The flag only flips in ConfirmEnableTwoFactor.
func (a *Auth) EnableTwoFactor(ctx context.Context, userID uuid.UUID, password string) error {
	account, err := a.getAccount(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(password, account.PasswordHash) {
		a.logger.InfoContext(ctx, "Auth service: enable 2FA rejected",
			"user_id", account.ID,
			"reason", "wrong password")
		return model.ErrInvalidCredentials
	}

	if err := a.issueCode(ctx, &account, model.LoginCodeWindow, a.notifier.SendCode); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Auth service: 2FA confirmation code sent",
		"user_id", account.ID)

	return nil
}

// ConfirmEnableTwoFactor turns 2FA on once the code checks out.
func (a *Auth) ConfirmEnableTwoFactor(ctx context.Context, userID uuid.UUID, code string) error {
	account, err := a.getAccount(ctx, userID)
	if err != nil {
		return err
	}

	if err := a.codes.Verify(account.PendingCode, code); err != nil {
		a.logger.InfoContext(ctx, "Auth service: 2FA confirmation code rejected",
			"user_id", account.ID,
			"error", err.Error())
		return err
	}

	account.TwoFactorEnabled = true
	account.ClearPendingCode()
	if err := a.save(ctx, account); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Auth service: 2FA enabled",
		"user_id", account.ID)

	return nil
}

// DisableTwoFactor turns 2FA off after re-checking the password.
func (a *Auth) DisableTwoFactor(ctx context.Context, userID uuid.UUID, password string) error {
	account, err := a.getAccount(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(password, account.PasswordHash) {
		a.logger.InfoContext(ctx, "Auth service: disable 2FA rejected",
			"user_id", account.ID,
			"reason", "wrong password")
		return model.ErrInvalidCredentials
	}

	account.TwoFactorEnabled = false
	account.ClearPendingCode()
	if err := a.save(ctx, account); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Auth service: 2FA disabled",
		"user_id", account.ID)

	return nil
}

// ForgotPassword emails a reset code to the account owning email.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	if err := policy.RequireFields("email", email); err != nil {
		return err
	}

	account, err := a.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.InfoContext(ctx, "Auth service: reset requested for unknown email")
			return model.ErrNotFound
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to get account by email",
			"error", err.Error())
		return fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := a.issueCode(ctx, &account, model.ResetCodeWindow, a.notifier.SendResetCode); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Auth service: reset code sent",
		"user_id", account.ID)

	return nil
}

// ResetPassword replaces the password when the reset code checks out.
// The code is checked before the new password.
func (a *Auth) ResetPassword(ctx context.Context, params model.ResetPasswordParams) error {
	if err := policy.RequireFields("email", params.Email, "code", params.Code, "newPassword", params.NewPassword); err != nil {
		return err
	}

	account, err := a.accounts.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to get account by email",
			"error", err.Error())
		return fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := a.codes.Verify(account.PendingCode, params.Code); err != nil {
		a.logger.InfoContext(ctx, "Auth service: reset code rejected",
			"user_id", account.ID,
			"error", err.Error())
		return err
	}

	if err := a.policy.ValidatePassword(params.NewPassword); err != nil {
		return err
	}

	hash, err := a.hasher.Hash(params.NewPassword)
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to hash password",
			"user_id", account.ID,
			"error", err.Error())
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = hash
	account.ClearPendingCode()
	if err := a.save(ctx, account); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Auth service: password reset",
		"user_id", account.ID)

	return nil
}

// GetSettings returns the security settings of an account.
func (a *Auth) GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	account, err := a.getAccount(ctx, userID)
	if err != nil {
		return model.Settings{}, err
	}
	return account.Settings(), nil
}

// GoogleLogin signs in with a Google ID token. An existing account with the
// token's email is linked; otherwise one is created when Name and Password
// are given, or NeedsProfile is returned.
func (a *Auth) GoogleLogin(ctx context.Context, params model.GoogleLoginParams) (model.GoogleLoginResult, error) {
	if err := policy.RequireFields("token", params.IDToken); err != nil {
		return model.GoogleLoginResult{}, err
	}
	if a.identity == nil {
		return model.GoogleLoginResult{}, fmt.Errorf("%w: federated login is not configured", model.ErrExternalProvider)
	}

	identity, err := a.identity.Verify(ctx, params.IDToken)
	if err != nil {
		a.logger.InfoContext(ctx, "Auth service: identity token rejected",
			"error", err.Error())
		if !errors.Is(err, model.ErrExternalProvider) {
			err = fmt.Errorf("%w: %w", model.ErrExternalProvider, err)
		}
		return model.GoogleLoginResult{}, err
	}

	account, err := a.accounts.GetByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		return a.linkFederated(ctx, account, identity)
	case !errors.Is(err, model.ErrNotFound):
		a.logger.ErrorContext(ctx, "Auth service: failed to get account by email",
			"error", err.Error())
		return model.GoogleLoginResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if params.Name == "" || params.Password == "" {
		a.logger.InfoContext(ctx, "Auth service: federated login needs profile",
			"email", identity.Email)
		return model.GoogleLoginResult{
			NeedsProfile: true,
			Email:        identity.Email,
			ExternalID:   identity.Subject,
		}, nil
	}

	if err := a.policy.ValidatePassword(params.Password); err != nil {
		return model.GoogleLoginResult{}, err
	}
	if err := a.policy.ValidateEmail(identity.Email); err != nil {
		return model.GoogleLoginResult{}, err
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to hash password",
			"error", err.Error())
		return model.GoogleLoginResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	subject := identity.Subject
	now := a.now()
	account, err = a.accounts.Create(ctx, model.Account{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        identity.Email,
		PasswordHash: hash,
		LoginMethod:  model.LoginMethodFederated,
		FederatedID:  &subject,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		var dup *model.DuplicateError
		if errors.As(err, &dup) {
			return model.GoogleLoginResult{}, err
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to create account",
			"error", err.Error())
		return model.GoogleLoginResult{}, fmt.Errorf("failed to create account: %w", err)
	}

	session, err := a.tokenService.Issue(ctx, account.Profile())
	if err != nil {
		return model.GoogleLoginResult{}, err
	}

	a.logger.InfoContext(ctx, "Auth service: federated account created",
		"user_id", account.ID)

	return model.GoogleLoginResult{
		Session:    &session,
		Email:      account.Email,
		ExternalID: subject,
	}, nil
}

func (a *Auth) linkFederated(ctx context.Context, account model.Account, identity model.ExternalIdentity) (model.GoogleLoginResult, error) {
	if account.FederatedID == nil {
		subject := identity.Subject
		account.FederatedID = &subject
		if err := a.save(ctx, account); err != nil {
			return model.GoogleLoginResult{}, err
		}
		a.logger.InfoContext(ctx, "Auth service: federated identity linked",
			"user_id", account.ID)
	}

	session, err := a.tokenService.Issue(ctx, account.Profile())
	if err != nil {
		return model.GoogleLoginResult{}, err
	}

	return model.GoogleLoginResult{
		Session:    &session,
		Email:      account.Email,
		ExternalID: *account.FederatedID,
	}, nil
}

// issueCode stores a fresh code on the account and hands the plaintext to
// send. A delivery failure is reported after the code is stored.
func (a *Auth) issueCode(
	ctx context.Context,
	account *model.Account,
	window time.Duration,
	send func(ctx context.Context, email, code string) error,
) error {
	code, pending, err := a.codes.Generate(window)
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to generate code",
			"user_id", account.ID,
			"error", err.Error())
		return fmt.Errorf("failed to generate code: %w", err)
	}

	account.PendingCode = &pending
	if err := a.save(ctx, *account); err != nil {
		return err
	}

	if err := send(ctx, account.Email, code); err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to deliver code",
			"user_id", account.ID,
			"error", err.Error())
		return fmt.Errorf("failed to deliver code: %w", err)
	}

	return nil
}

func (a *Auth) getAccount(ctx context.Context, id uuid.UUID) (model.Account, error) {
	account, err := a.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Account{}, model.ErrNotFound
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to get account",
			"user_id", id,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (a *Auth) save(ctx context.Context, account model.Account) error {
	account.UpdatedAt = a.now()
	if err := a.accounts.Save(ctx, account); err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to save account",
			"user_id", account.ID,
			"error", err.Error())
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}
