package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for accounts.
//
// Create must enforce name and email uniqueness atomically and report
// collisions as ErrDuplicateName or ErrDuplicateEmail. Save only updates
// an existing account and reports a missing one as ErrNotFound.
type AccountStore interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByNameOrEmail(ctx context.Context, identifier string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByName(ctx context.Context, name string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Save(ctx context.Context, account Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

// LoginMethod tells how an account was created.
type LoginMethod string

const (
	// LoginMethodManual is an account registered with name, email and password.
	LoginMethodManual LoginMethod = "manual"
	// LoginMethodFederated is an account created from an external identity.
	LoginMethodFederated LoginMethod = "federated"
)

// Account represents a stored user with authentication material.
type Account struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PasswordHash     string
	TwoFactorEnabled bool
	PendingCode      *PendingCode
	LoginMethod      LoginMethod
	FederatedID      *string
	TrustedDevices   []TrustedDevice
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TrustedDevice is a device allowed to skip the one-time code step.
// Only the SHA-256 digest of the device token is kept.
type TrustedDevice struct {
	TokenHash  []byte
	Descriptor string
	IssuedAt   time.Time
}

// Profile is the public part of an account returned to clients.
type Profile struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Settings is the account settings view.
type Settings struct {
	TwoFactorEnabled bool
	Email            string
	Name             string
	LoginMethod      LoginMethod
}

// AccountSummary is an account listing entry without secrets.
type AccountSummary struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	TwoFactorEnabled   bool
	LoginMethod        LoginMethod
	TrustedDeviceCount int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Profile returns the public part of the account.
func (a Account) Profile() Profile {
	return Profile{ID: a.ID, Name: a.Name, Email: a.Email}
}

// Settings returns the settings view of the account.
func (a Account) Settings() Settings {
	return Settings{
		TwoFactorEnabled: a.TwoFactorEnabled,
		Email:            a.Email,
		Name:             a.Name,
		LoginMethod:      a.LoginMethod,
	}
}

// Summary returns the listing view of the account.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		ID:                 a.ID,
		Name:               a.Name,
		Email:              a.Email,
		TwoFactorEnabled:   a.TwoFactorEnabled,
		LoginMethod:        a.LoginMethod,
		TrustedDeviceCount: len(a.TrustedDevices),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// ClearPendingCode drops any outstanding one-time code.
func (a *Account) ClearPendingCode() {
	a.PendingCode = nil
}
