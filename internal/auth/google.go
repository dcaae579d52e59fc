package auth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/idtoken"
)

var ErrInvalidIdentityToken = errors.New("invalid Google token")

// Identity is what the identity provider vouches for.
type Identity struct {
	Email string
	Name  string
}

// IdentityGateway turns an external bearer credential into a verified identity.
type IdentityGateway interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

type validator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// GoogleVerifier checks Google ID tokens issued for clientID.
type GoogleVerifier struct {
	clientID  string
	validator validator
}

var _ IdentityGateway = (*GoogleVerifier)(nil)

func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, err
	}
	return &GoogleVerifier{clientID: clientID, validator: v}, nil
}

func (g *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrInvalidIdentityToken
	}
	payload, err := g.validator.Validate(ctx, rawToken, g.clientID)
	if err != nil {
		return nil, ErrInvalidIdentityToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidIdentityToken
	}
	name, _ := payload.Claims["name"].(string)

	return &Identity{Email: email, Name: name}, nil
}
