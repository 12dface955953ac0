// Package memory keeps accounts in process memory. It backs local
// development and tests; everything is lost on restart.
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authgate/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

// AccountRepository is a mutex-guarded account store. Uniqueness checks
// and inserts happen under the same lock.
type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]model.Account
	byName  map[string]uuid.UUID
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewAccountRepository creates an empty repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:    make(map[uuid.UUID]model.Account),
		byName:  make(map[string]uuid.UUID),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *AccountRepository) Create(_ context.Context, account model.Account) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[account.Name]; ok {
		return model.Account{}, model.ErrDuplicateName
	}
	if _, ok := r.byEmail[account.Email]; ok {
		return model.Account{}, model.ErrDuplicateEmail
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := r.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	stored := clone(account)
	r.byID[stored.ID] = stored
	r.byName[stored.Name] = stored.ID
	r.byEmail[stored.Email] = stored.ID

	return clone(stored), nil
}

func (r *AccountRepository) GetByNameOrEmail(_ context.Context, identifier string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.byEmail[identifier]; ok {
		return clone(r.byID[id]), nil
	}
	if id, ok := r.byName[identifier]; ok {
		return clone(r.byID[id]), nil
	}
	return model.Account{}, model.ErrNotFound
}

func (r *AccountRepository) GetByID(_ context.Context, id uuid.UUID) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return clone(account), nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *AccountRepository) GetByName(_ context.Context, name string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *AccountRepository) List(_ context.Context) ([]model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]model.Account, 0, len(r.byID))
	for _, a := range r.byID {
		accounts = append(accounts, clone(a))
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// Save replaces the stored record. Trusted devices already stored are kept
// even when the incoming record does not carry them. Unknown ids yield
// model.ErrNotFound, so a save racing a delete cannot recreate the account.
func (r *AccountRepository) Save(_ context.Context, account model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[account.ID]
	if !ok {
		return model.ErrNotFound
	}
	if id, ok := r.byName[account.Name]; ok && id != account.ID {
		return model.ErrDuplicateName
	}
	if id, ok := r.byEmail[account.Email]; ok && id != account.ID {
		return model.ErrDuplicateEmail
	}

	delete(r.byName, existing.Name)
	delete(r.byEmail, existing.Email)
	account.CreatedAt = existing.CreatedAt
	account.TrustedDevices = mergeDevices(existing.TrustedDevices, account.TrustedDevices)
	account.UpdatedAt = r.now()

	stored := clone(account)
	r.byID[stored.ID] = stored
	r.byName[stored.Name] = stored.ID
	r.byEmail[stored.Email] = stored.ID

	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byName, account.Name)
	delete(r.byEmail, account.Email)
	return nil
}

func (r *AccountRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[uuid.UUID]model.Account)
	r.byName = make(map[string]uuid.UUID)
	r.byEmail = make(map[string]uuid.UUID)
	return nil
}

func mergeDevices(existing, incoming []model.TrustedDevice) []model.TrustedDevice {
	merged := append([]model.TrustedDevice(nil), existing...)
	for _, d := range incoming {
		found := false
		for _, e := range existing {
			if bytes.Equal(e.TokenHash, d.TokenHash) {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, d)
		}
	}
	return merged
}

// clone deep-copies the pointer and slice fields so callers never share
// memory with the stored record.
func clone(a model.Account) model.Account {
	if a.PendingCode != nil {
		p := *a.PendingCode
		a.PendingCode = &p
	}
	if a.FederatedID != nil {
		f := *a.FederatedID
		a.FederatedID = &f
	}
	if a.TrustedDevices != nil {
		devices := make([]model.TrustedDevice, len(a.TrustedDevices))
		for i, d := range a.TrustedDevices {
			d.TokenHash = append([]byte(nil), d.TokenHash...)
			devices[i] = d
		}
		a.TrustedDevices = devices
	}
	return a
}
