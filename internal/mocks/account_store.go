package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authgate/internal/model"
)

var _ model.AccountStore = (*AccountStore)(nil)

// AccountStore is a mock of model.AccountStore.
type AccountStore struct {
	mock.Mock
}

// NewAccountStore creates an AccountStore mock that asserts its
// expectations when the test ends.
func NewAccountStore(t testingT) *AccountStore {
	m := &AccountStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountStore) Create(ctx context.Context, account model.Account) (model.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) GetByNameOrEmail(ctx context.Context, identifier string) (model.Account, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) GetByName(ctx context.Context, name string) (model.Account, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) List(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]model.Account)
	return accounts, args.Error(1)
}

func (m *AccountStore) Save(ctx context.Context, account model.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *AccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AccountStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
