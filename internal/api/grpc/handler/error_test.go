package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "validation",
			in:       model.NewValidationError("password", "must include a number"),
			wantCode: codes.InvalidArgument,
			wantMsg:  "invalid password: must include a number",
		},
		{
			name:     "duplicate name",
			in:       model.ErrDuplicateName,
			wantCode: codes.AlreadyExists,
			wantMsg:  "username already taken",
		},
		{
			name:     "wrapped not found",
			in:       fmt.Errorf("lookup: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "account not found",
		},
		{
			name:     "invalid credentials",
			in:       model.ErrInvalidCredentials,
			wantCode: codes.Unauthenticated,
			wantMsg:  "invalid credentials",
		},
		{
			name:     "expired code",
			in:       model.ErrCodeExpired,
			wantCode: codes.Unauthenticated,
			wantMsg:  "code has expired",
		},
		{
			name:     "wrong code",
			in:       model.ErrInvalidCode,
			wantCode: codes.Unauthenticated,
			wantMsg:  "invalid or expired code",
		},
		{
			name:     "provider",
			in:       fmt.Errorf("%w: bad signature", model.ErrExternalProvider),
			wantCode: codes.Internal,
			wantMsg:  "identity provider error",
		},
		{
			name:     "unknown error hides details",
			in:       errors.New("pq: connection refused"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st, ok := status.FromError(handleError(tt.in))
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestHandleResetError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      error
		wantMsg string
	}{
		{in: model.ErrNoPendingCode, wantMsg: "reset code is invalid or has expired"},
		{in: model.ErrCodeExpired, wantMsg: "reset code has expired"},
		{in: model.ErrInvalidCode, wantMsg: "invalid reset code"},
	}

	for _, tt := range tests {
		st, _ := status.FromError(handleResetError(tt.in))
		assert.Equal(t, codes.InvalidArgument, st.Code())
		assert.Equal(t, tt.wantMsg, st.Message())
	}

	st, _ := status.FromError(handleResetError(model.ErrNotFound))
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestValidationDetails(t *testing.T) {
	t.Parallel()

	err := handleError(model.NewValidationError("password", "must be at least 8 characters", "must include a number"))
	st, _ := status.FromError(err)

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, br.GetFieldViolations(), 2)
	assert.Equal(t, "password", br.GetFieldViolations()[0].GetField())
	assert.Equal(t, "must include a number", br.GetFieldViolations()[1].GetDescription())
}
