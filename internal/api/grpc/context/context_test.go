package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager(t *testing.T) {
	t.Parallel()

	m := NewManager()
	userID := uuid.New()

	_, ok := m.GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	got, ok := m.GetUserIDFromContext(m.SetUserIDToContext(context.Background(), userID))
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = m.GetUserIDFromContext(m.SetUserIDToContext(context.Background(), uuid.Nil))
	assert.False(t, ok)
}

func TestManager_IgnoresClientMetadata(t *testing.T) {
	t.Parallel()

	m := NewManager()
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("user_id", uuid.NewString()))

	_, ok := m.GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
