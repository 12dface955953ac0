package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/authgate/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

const (
	uniqueViolation = "23505"

	nameConstraint  = "users_name_key"
	emailConstraint = "users_email_key"
)

const accountColumns = `id, name, email, password_hash, two_factor_enabled,
	pending_code_hash, pending_code_expires_at, login_method, federated_id,
	created_at, updated_at`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// Create inserts a new account. Trusted devices are written by Save.
func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	query := `INSERT INTO users (` + accountColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	hash, expiresAt := pendingColumns(account.PendingCode)
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.Email, account.PasswordHash, account.TwoFactorEnabled,
		hash, expiresAt, string(account.LoginMethod), nullString(account.FederatedID),
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return model.Account{}, dup
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	account.TrustedDevices = nil
	return account, nil
}

func (r *AccountRepository) GetByNameOrEmail(ctx context.Context, identifier string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users
			  WHERE email = $1 OR name = $1
			  ORDER BY (email = $1) DESC
			  LIMIT 1`

	return r.getOne(ctx, "name or email", query, identifier)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1`

	return r.getOne(ctx, "id", query, id)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE email = $1`

	return r.getOne(ctx, "email", query, email)
}

func (r *AccountRepository) GetByName(ctx context.Context, name string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE name = $1`

	return r.getOne(ctx, "name", query, name)
}

// List returns every account with its trusted devices, oldest first.
func (r *AccountRepository) List(ctx context.Context) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	for i := range accounts {
		devices, err := r.devices(ctx, accounts[i].ID)
		if err != nil {
			return nil, err
		}
		accounts[i].TrustedDevices = devices
	}

	return accounts, nil
}

// Save updates the account row and inserts trusted devices that are not
// stored yet. Stored devices are never removed. Save never creates a row:
// an account deleted meanwhile yields model.ErrNotFound.
func (r *AccountRepository) Save(ctx context.Context, account model.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE users SET
			      name = $2,
			      email = $3,
			      password_hash = $4,
			      two_factor_enabled = $5,
			      pending_code_hash = $6,
			      pending_code_expires_at = $7,
			      login_method = $8,
			      federated_id = $9,
			      updated_at = $10
			  WHERE id = $1`

	hash, expiresAt := pendingColumns(account.PendingCode)
	res, err := tx.ExecContext(ctx, query,
		account.ID, account.Name, account.Email, account.PasswordHash, account.TwoFactorEnabled,
		hash, expiresAt, string(account.LoginMethod), nullString(account.FederatedID),
		time.Now().UTC(),
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	deviceQuery := `INSERT INTO trusted_devices (user_id, token_hash, descriptor, issued_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (token_hash) DO NOTHING`

	for _, d := range account.TrustedDevices {
		if _, err := tx.ExecContext(ctx, deviceQuery, account.ID, d.TokenHash, d.Descriptor, d.IssuedAt); err != nil {
			return fmt.Errorf("failed to save trusted device: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes the account. Trusted devices go with it by cascade.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM users`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to delete accounts: %w", err)
	}
	return nil
}

func (r *AccountRepository) getOne(ctx context.Context, by, query string, arg any) (model.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by %s: %w", by, err)
	}

	devices, err := r.devices(ctx, account.ID)
	if err != nil {
		return model.Account{}, err
	}
	account.TrustedDevices = devices

	return account, nil
}

func (r *AccountRepository) devices(ctx context.Context, userID uuid.UUID) ([]model.TrustedDevice, error) {
	query := `SELECT token_hash, descriptor, issued_at FROM trusted_devices
			  WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trusted devices: %w", err)
	}
	defer rows.Close()

	var devices []model.TrustedDevice
	for rows.Next() {
		var d model.TrustedDevice
		if err := rows.Scan(&d.TokenHash, &d.Descriptor, &d.IssuedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trusted device: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trusted devices: %w", err)
	}

	return devices, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (model.Account, error) {
	var (
		account     model.Account
		codeHash    sql.NullString
		codeExpires sql.NullTime
		method      string
		federatedID sql.NullString
	)

	err := s.Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.TwoFactorEnabled,
		&codeHash, &codeExpires, &method, &federatedID,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}

	account.LoginMethod = model.LoginMethod(method)
	if codeHash.Valid && codeExpires.Valid {
		account.PendingCode = &model.PendingCode{Hash: codeHash.String, ExpiresAt: codeExpires.Time}
	}
	if federatedID.Valid {
		id := federatedID.String
		account.FederatedID = &id
	}

	return account, nil
}

func pendingColumns(p *model.PendingCode) (sql.NullString, sql.NullTime) {
	if p == nil {
		return sql.NullString{}, sql.NullTime{}
	}
	return sql.NullString{String: p.Hash, Valid: true}, sql.NullTime{Time: p.ExpiresAt, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case nameConstraint:
		return model.ErrDuplicateName
	case emailConstraint:
		return model.ErrDuplicateEmail
	default:
		return nil
	}
}
