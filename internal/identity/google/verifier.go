// Package google verifies Google-issued ID tokens.
package google

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/dtroode/authgate/internal/model"
)

var _ model.IdentityProvider = (*Verifier)(nil)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier checks ID token signatures against Google's published keys
// and that the audience is the configured client id.
type Verifier struct {
	clientID string
	validate validateFunc
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) (model.ExternalIdentity, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("%w: %w", model.ErrExternalProvider, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return model.ExternalIdentity{}, fmt.Errorf("%w: token carries no email", model.ErrExternalProvider)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return model.ExternalIdentity{}, fmt.Errorf("%w: email is not verified", model.ErrExternalProvider)
	}

	return model.ExternalIdentity{
		Email:   email,
		Subject: payload.Subject,
	}, nil
}
