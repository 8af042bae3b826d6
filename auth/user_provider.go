package auth

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// UserStore is the slice of the credential store the provider needs
type UserStore interface {
	GetByUsername(ctx context.Context, username string, criteria ...repository.SelectCriteria) (*User, error)
}

// UserProvider resolves identities against stored credentials
type UserProvider struct {
	store  UserStore
	logger Logger
}

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserStore) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	if l != nil {
		u.logger = l
	}
	return u
}

// VerifyIdentity will find the user, compare the password to the stored hash,
// and return the identity. An unknown username and a wrong password are
// indistinguishable in the returned error.
func (u *UserProvider) VerifyIdentity(ctx context.Context, username, password string) (Identity, error) {
	user, err := u.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, ErrMismatchedHashAndPassword
	}

	return identityFromUser(user), nil
}

// FindIdentityByUsername resolves an identity without checking credentials.
// Used by the request authenticator to load a token's principal.
func (u *UserProvider) FindIdentityByUsername(ctx context.Context, username string) (Identity, error) {
	user, err := u.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user")
	}

	return identityFromUser(user), nil
}

type authIdentity struct {
	id       string
	username string
	role     string
}

func (a authIdentity) ID() string       { return a.id }
func (a authIdentity) Username() string { return a.username }
func (a authIdentity) Role() string     { return a.role }

func identityFromUser(user *User) Identity {
	return authIdentity{
		id:       user.ID.String(),
		username: user.Username,
		role:     string(user.Role),
	}
}
