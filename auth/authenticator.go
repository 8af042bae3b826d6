package auth

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// UserRegistry is the slice of the users repository registration needs
type UserRegistry interface {
	GetByUsername(ctx context.Context, username string, criteria ...repository.SelectCriteria) (*User, error)
	Register(ctx context.Context, user *User) (*User, error)
}

// Auther orchestrates registration and login. A token is only ever minted for
// a username that was just re-verified against stored credentials.
type Auther struct {
	provider     IdentityProvider
	registry     UserRegistry
	tokenService TokenService
	logger       Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, registry UserRegistry, tokenService TokenService) *Auther {
	return &Auther{
		provider:     provider,
		registry:     registry,
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credentials and issues a token for the username. Every
// credential failure collapses into ErrInvalidCredentials so the caller can
// never learn whether the username exists.
func (s *Auther) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, username, password)
	if err != nil {
		if isCredentialFailure(err) {
			s.logger.Warn("Login rejected", "username", username)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login verify identity error", "error", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "authentication failed").
			WithTextCode(TextCodeInternal)
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token issuance error", "error", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "authentication failed").
			WithTextCode(TextCodeInternal)
	}

	if token == "" {
		s.logger.Error("Login produced an empty token")
		return "", errors.New("generated token cannot be empty", errors.CategoryInternal).
			WithTextCode(TextCodeInternal)
	}

	return token, nil
}

// Register creates a new credential. Fails with ErrUserAlreadyExists when the
// username is taken; the first credential is never mutated by a retry.
func (s *Auther) Register(ctx context.Context, username, password string, role UserRole) (*User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required", errors.CategoryValidation).
			WithTextCode(TextCodeValidation).
			WithCode(errors.CodeBadRequest)
	}

	if !IsValidRole(role) {
		return nil, errors.New("unknown role", errors.CategoryValidation).
			WithTextCode(TextCodeValidation).
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{"role": role})
	}

	if _, err := s.registry.GetByUsername(ctx, username); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.IsNotFound(err) {
		s.logger.Error("Register lookup error", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "registration failed").
			WithTextCode(TextCodeInternal)
	}

	hash, err := HashPassword(password)
	if err != nil {
		s.logger.Error("Register hash error", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "registration failed").
			WithTextCode(TextCodeInternal)
	}

	user, err := s.registry.Register(ctx, &User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		s.logger.Error("Register persist error", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "registration failed").
			WithTextCode(TextCodeInternal)
	}

	return user, nil
}

func isCredentialFailure(err error) bool {
	return errors.Is(err, ErrMismatchedHashAndPassword) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.IsNotFound(err)
}
