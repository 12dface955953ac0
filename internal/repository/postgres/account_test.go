package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authgate/internal/model"
)

var columns = []string{
	"id", "name", "email", "password_hash", "two_factor_enabled",
	"pending_code_hash", "pending_code_expires_at", "login_method", "federated_id",
	"created_at", "updated_at",
}

func newRepoWithMock(t *testing.T) (*AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewAccountRepository(db), mock
}

func TestAccountRepository_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		dbErr       error
		expectedErr error
		wantErr     string
	}{
		{
			name: "success",
		},
		{
			name:        "duplicate name",
			dbErr:       &pgconn.PgError{Code: uniqueViolation, ConstraintName: nameConstraint},
			expectedErr: model.ErrDuplicateName,
		},
		{
			name:        "duplicate email",
			dbErr:       &pgconn.PgError{Code: uniqueViolation, ConstraintName: emailConstraint},
			expectedErr: model.ErrDuplicateEmail,
		},
		{
			name:    "database error",
			dbErr:   errors.New("db down"),
			wantErr: "failed to create account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newRepoWithMock(t)
			exp := mock.ExpectExec(`INSERT INTO users`).
				WithArgs(sqlmock.AnyArg(), "alice", "alice@gmail.com", "hash", false,
					nil, nil, "manual", nil, sqlmock.AnyArg(), sqlmock.AnyArg())
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			got, err := repo.Create(context.Background(), model.Account{
				Name:         "alice",
				Email:        "alice@gmail.com",
				PasswordHash: "hash",
				LoginMethod:  model.LoginMethodManual,
			})

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.wantErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, got.ID)
				assert.False(t, got.CreatedAt.IsZero())
			}
		})
	}
}

func TestAccountRepository_GetByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	now := time.Now().UTC()
	expires := now.Add(5 * time.Minute)

	t.Run("found with devices and pending code", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				id.String(), "alice", "alice@gmail.com", "hash", true,
				"codehash", expires, "manual", nil, now, now,
			))
		mock.ExpectQuery(`SELECT token_hash, descriptor, issued_at FROM trusted_devices`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"token_hash", "descriptor", "issued_at"}).
				AddRow([]byte{1, 2}, "laptop", now))

		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.True(t, got.TwoFactorEnabled)
		require.NotNil(t, got.PendingCode)
		assert.Equal(t, "codehash", got.PendingCode.Hash)
		assert.True(t, got.PendingCode.ExpiresAt.Equal(expires))
		assert.Nil(t, got.FederatedID)
		require.Len(t, got.TrustedDevices, 1)
		assert.Equal(t, "laptop", got.TrustedDevices[0].Descriptor)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(errors.New("db down"))

		_, err := repo.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get account by id")
	})
}

func TestAccountRepository_GetByNameOrEmail(t *testing.T) {
	t.Parallel()

	repo, mock := newRepoWithMock(t)
	id := uuid.New()
	now := time.Now().UTC()
	federated := "google-sub"

	mock.ExpectQuery(`WHERE email = \$1 OR name = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			id.String(), "alice", "alice@gmail.com", "hash", false,
			nil, nil, "federated", federated, now, now,
		))
	mock.ExpectQuery(`FROM trusted_devices`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"token_hash", "descriptor", "issued_at"}))

	got, err := repo.GetByNameOrEmail(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, got.PendingCode)
	assert.Equal(t, model.LoginMethodFederated, got.LoginMethod)
	require.NotNil(t, got.FederatedID)
	assert.Equal(t, federated, *got.FederatedID)
	assert.Empty(t, got.TrustedDevices)
}

func TestAccountRepository_Save(t *testing.T) {
	t.Parallel()

	account := model.Account{
		ID:           uuid.New(),
		Name:         "alice",
		Email:        "alice@gmail.com",
		PasswordHash: "hash",
		LoginMethod:  model.LoginMethodManual,
		PendingCode:  &model.PendingCode{Hash: "codehash", ExpiresAt: time.Now()},
		TrustedDevices: []model.TrustedDevice{
			{TokenHash: []byte{1}, Descriptor: "laptop", IssuedAt: time.Now()},
		},
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users SET .* WHERE id = \$1`).
			WithArgs(account.ID, "alice", "alice@gmail.com", "hash", false,
				"codehash", sqlmock.AnyArg(), "manual", nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO trusted_devices .* ON CONFLICT \(token_hash\) DO NOTHING`).
			WithArgs(account.ID, []byte{1}, "laptop", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Save(context.Background(), account))
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users SET`).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: emailConstraint})
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Save(context.Background(), account), model.ErrDuplicateEmail)
	})

	t.Run("device insert fails", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO trusted_devices`).
			WillReturnError(errors.New("db down"))
		mock.ExpectRollback()

		err := repo.Save(context.Background(), account)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save trusted device")
	})

	t.Run("account deleted meanwhile", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users SET .* WHERE id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Save(context.Background(), account), model.ErrNotFound)
	})
}

func TestAccountRepository_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), model.ErrNotFound)
	})

	t.Run("delete all", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(`DELETE FROM users`).
			WillReturnResult(sqlmock.NewResult(0, 3))

		assert.NoError(t, repo.DeleteAll(context.Background()))
	})
}

func TestAccountRepository_List(t *testing.T) {
	t.Parallel()

	repo, mock := newRepoWithMock(t)
	first, second := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(first.String(), "alice", "alice@gmail.com", "hash", false, nil, nil, "manual", nil, now, now).
			AddRow(second.String(), "bob", "bob@gmail.com", "hash", true, nil, nil, "manual", nil, now, now))
	mock.ExpectQuery(`FROM trusted_devices`).
		WithArgs(first).
		WillReturnRows(sqlmock.NewRows([]string{"token_hash", "descriptor", "issued_at"}))
	mock.ExpectQuery(`FROM trusted_devices`).
		WithArgs(second).
		WillReturnRows(sqlmock.NewRows([]string{"token_hash", "descriptor", "issued_at"}).
			AddRow([]byte{1}, "phone", now).
			AddRow([]byte{2}, "laptop", now))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Empty(t, accounts[0].TrustedDevices)
	assert.Len(t, accounts[1].TrustedDevices, 2)
}

func TestDuplicateError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, duplicateError(errors.New("other")))
	assert.Nil(t, duplicateError(&pgconn.PgError{Code: "23503"}))
	assert.Nil(t, duplicateError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "trusted_devices_token_hash_key"}))
	assert.ErrorIs(t, duplicateError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: nameConstraint}), model.ErrDuplicateName)
}
