package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dailytodo/internal/auth"
	"dailytodo/internal/model"
	"dailytodo/internal/repository"
)

const defaultUsername = "No Name"

// TokenIssuer signs access tokens for a user id.
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

// AuthService exchanges a third-party identity for an API access token.
type AuthService struct {
	identity auth.IdentityGateway
	users    repository.UserRepositoryInterface
	tokens   TokenIssuer
}

func NewAuthService(identity auth.IdentityGateway, users repository.UserRepositoryInterface, tokens TokenIssuer) *AuthService {
	return &AuthService{identity: identity, users: users, tokens: tokens}
}

// LoginWithGoogle verifies the Google ID token, registers the user on first login
// and returns a signed access token.
func (s *AuthService) LoginWithGoogle(ctx context.Context, googleToken string) (string, error) {
	identity, err := s.identity.Verify(ctx, googleToken)
	if err != nil {
		return "", err
	}

	user, err := s.getOrCreateUser(ctx, identity)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *AuthService) getOrCreateUser(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	username := strings.TrimSpace(identity.Name)
	if username == "" {
		username = defaultUsername
	}
	user = &model.User{Email: email, Username: username, Tasks: model.TaskList{}}

	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// a parallel first login registered the same email
		user, err = s.users.FindByEmail(ctx, email)
		if err == nil && user == nil {
			err = ErrNotFound
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
