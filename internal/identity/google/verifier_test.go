package google

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/dtroode/authgate/internal/model"
)

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  *idtoken.Payload
		err      error
		expected model.ExternalIdentity
		wantErr  bool
	}{
		{
			name: "valid token",
			payload: &idtoken.Payload{
				Subject: "sub-1",
				Claims:  map[string]interface{}{"email": "alice@gmail.com", "email_verified": true},
			},
			expected: model.ExternalIdentity{Email: "alice@gmail.com", Subject: "sub-1"},
		},
		{
			name: "no verified claim",
			payload: &idtoken.Payload{
				Subject: "sub-2",
				Claims:  map[string]interface{}{"email": "bob@gmail.com"},
			},
			expected: model.ExternalIdentity{Email: "bob@gmail.com", Subject: "sub-2"},
		},
		{
			name:    "validation fails",
			err:     errors.New("idtoken: invalid signature"),
			wantErr: true,
		},
		{
			name:    "no email",
			payload: &idtoken.Payload{Subject: "sub", Claims: map[string]interface{}{}},
			wantErr: true,
		},
		{
			name: "unverified email",
			payload: &idtoken.Payload{
				Subject: "sub",
				Claims:  map[string]interface{}{"email": "alice@gmail.com", "email_verified": false},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotAudience string
			v := NewVerifier("client-id")
			v.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				return tt.payload, tt.err
			}

			identity, err := v.Verify(context.Background(), "token")
			assert.Equal(t, "client-id", gotAudience)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrExternalProvider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}
