package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

func storedUser(t *testing.T, username, password string, role auth.UserRole) *auth.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	return &auth.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
}

func TestVerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the identity for matching credentials", func(t *testing.T) {
		user := storedUser(t, "testuser", "password123", auth.RoleAdmin)
		store := new(MockUserStore)
		store.On("GetByUsername", ctx, "testuser").Return(user, nil).Once()

		provider := auth.NewUserProvider(store)
		identity, err := provider.VerifyIdentity(ctx, "testuser", "password123")

		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.Equal(t, "testuser", identity.Username())
		assert.Equal(t, auth.RoleAdmin, identity.Role())
	})

	t.Run("unknown username reads as mismatched credentials", func(t *testing.T) {
		store := new(MockUserStore)
		store.On("GetByUsername", ctx, "ghost").Return(nil, repository.NewRecordNotFound()).Once()

		provider := auth.NewUserProvider(store)
		identity, err := provider.VerifyIdentity(ctx, "ghost", "password123")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	})

	t.Run("wrong password reads as mismatched credentials", func(t *testing.T) {
		user := storedUser(t, "testuser", "password123", auth.RoleUser)
		store := new(MockUserStore)
		store.On("GetByUsername", ctx, "testuser").Return(user, nil).Once()

		provider := auth.NewUserProvider(store)
		identity, err := provider.VerifyIdentity(ctx, "testuser", "wrong-password")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	})

	t.Run("store failure is not a credential failure", func(t *testing.T) {
		store := new(MockUserStore)
		store.On("GetByUsername", ctx, "testuser").Return(nil, errors.New("connection refused")).Once()

		provider := auth.NewUserProvider(store)
		identity, err := provider.VerifyIdentity(ctx, "testuser", "password123")

		assert.Nil(t, identity)
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	})
}

func TestFindIdentityByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves an existing user without a credential check", func(t *testing.T) {
		user := storedUser(t, "testuser", "password123", auth.RoleUser)
		store := new(MockUserStore)
		store.On("GetByUsername", ctx, "testuser").Return(user, nil).Once()

		provider := auth.NewUserProvider(store)
		identity, err := provider.FindIdentityByUsername(ctx, "testuser")

		require.NoError(t, err)
		assert.Equal(t, "testuser", identity.Username())
		assert.Equal(t, auth.RoleUser, identity.Role())
	})

	t.Run("missing user maps to identity not found", func(t *testing.T) {
		store := new(MockUserStore)
		store.On("GetByUsername", ctx, "ghost").Return(nil, repository.NewRecordNotFound()).Once()

		provider := auth.NewUserProvider(store)
		identity, err := provider.FindIdentityByUsername(ctx, "ghost")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
	})
}
