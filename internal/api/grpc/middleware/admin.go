package middleware

import (
	"context"
	"crypto/subtle"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate/internal/logger"
)

const adminKeyHeader = "x-admin-key"

// AdminKey guards administrative methods with a shared key.
// An empty configured key disables administration entirely.
type AdminKey struct {
	key    []byte
	logger *logger.Logger
}

// NewAdminKey creates a new AdminKey middleware.
func NewAdminKey(key string, logger *logger.Logger) *AdminKey {
	return &AdminKey{key: []byte(key), logger: logger}
}

// AuthFunc compares the x-admin-key header to the configured key.
func (m *AdminKey) AuthFunc(ctx context.Context) (context.Context, error) {
	if len(m.key) == 0 {
		return nil, status.Error(codes.PermissionDenied, "administration is disabled")
	}

	var provided string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(adminKeyHeader); len(values) > 0 {
			provided = values[0]
		}
	}
	if provided == "" {
		return nil, status.Error(codes.Unauthenticated, "missing admin key")
	}

	if subtle.ConstantTimeCompare([]byte(provided), m.key) != 1 {
		m.logger.WarnContext(ctx, "AdminKey: rejected admin request")
		return nil, status.Error(codes.PermissionDenied, "invalid admin key")
	}

	return ctx, nil
}
