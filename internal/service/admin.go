package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
)

// Admin lists and removes accounts. Callers are authorized by the
// transport layer.
type Admin struct {
	accounts model.AccountStore
	logger   *logger.Logger
}

func NewAdmin(accounts model.AccountStore, logger *logger.Logger) *Admin {
	return &Admin{accounts: accounts, logger: logger}
}

// ListAccounts returns every account without secrets.
func (a *Admin) ListAccounts(ctx context.Context) ([]model.AccountSummary, error) {
	accounts, err := a.accounts.List(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "Admin service: failed to list accounts",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summaries := make([]model.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.Summary())
	}
	return summaries, nil
}

func (a *Admin) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := a.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		a.logger.ErrorContext(ctx, "Admin service: failed to delete account",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete account: %w", err)
	}

	a.logger.InfoContext(ctx, "Admin service: account deleted",
		"user_id", id)
	return nil
}

func (a *Admin) DeleteAllAccounts(ctx context.Context) error {
	if err := a.accounts.DeleteAll(ctx); err != nil {
		a.logger.ErrorContext(ctx, "Admin service: failed to delete accounts",
			"error", err.Error())
		return fmt.Errorf("failed to delete accounts: %w", err)
	}

	a.logger.WarnContext(ctx, "Admin service: all accounts deleted")
	return nil
}
