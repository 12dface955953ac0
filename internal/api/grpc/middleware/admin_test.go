package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate/internal/testutil"
)

func TestAdminKey_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		provided   string
		wantCode   codes.Code
	}{
		{name: "matching key", configured: "s3cret", provided: "s3cret", wantCode: codes.OK},
		{name: "wrong key", configured: "s3cret", provided: "guess", wantCode: codes.PermissionDenied},
		{name: "missing key", configured: "s3cret", wantCode: codes.Unauthenticated},
		{name: "administration disabled", provided: "anything", wantCode: codes.PermissionDenied},
		{name: "disabled and empty header", wantCode: codes.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewAdminKey(tt.configured, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.provided != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(adminKeyHeader, tt.provided))
			}

			got, err := m.AuthFunc(ctx)
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, ctx, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
