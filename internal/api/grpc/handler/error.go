package handler

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate/internal/model"
)

// handleError translates service errors into gRPC statuses. Code errors
// map to Unauthenticated.
func handleError(err error) error {
	if errors.Is(err, model.ErrInvalidCode) {
		if errors.Is(err, model.ErrCodeExpired) {
			return status.Error(codes.Unauthenticated, "code has expired")
		}
		return status.Error(codes.Unauthenticated, "invalid or expired code")
	}
	return commonError(err)
}

// handleResetError is handleError for password reset, where code errors
// are bad input.
func handleResetError(err error) error {
	switch {
	case errors.Is(err, model.ErrNoPendingCode):
		return status.Error(codes.InvalidArgument, "reset code is invalid or has expired")
	case errors.Is(err, model.ErrCodeExpired):
		return status.Error(codes.InvalidArgument, "reset code has expired")
	case errors.Is(err, model.ErrInvalidCode):
		return status.Error(codes.InvalidArgument, "invalid reset code")
	}
	return commonError(err)
}

func commonError(err error) error {
	var (
		vErr *model.ValidationError
		dup  *model.DuplicateError
	)

	switch {
	case errors.As(err, &vErr):
		return validationStatus(vErr)
	case errors.As(err, &dup):
		return status.Error(codes.AlreadyExists, dup.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "account not found")
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, model.ErrExternalProvider):
		return status.Error(codes.Internal, "identity provider error")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func validationStatus(vErr *model.ValidationError) error {
	st := status.New(codes.InvalidArgument, vErr.Error())

	violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(vErr.Problems))
	for _, p := range vErr.Problems {
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       vErr.Field,
			Description: p,
		})
	}

	detailed, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
