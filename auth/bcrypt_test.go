package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true, // bcrypt can hash empty strings!
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := auth.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)

			err = auth.ComparePasswordAndHash(tt.password, hash)
			assert.NoError(t, err)
		})
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := auth.HashPassword("samePassword")
	require.NoError(t, err)

	second, err := auth.HashPassword("samePassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestComparePasswordAndHash(t *testing.T) {
	password := "testPassword123!"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	t.Run("Matching password", func(t *testing.T) {
		assert.NoError(t, auth.ComparePasswordAndHash(password, hash))
	})

	t.Run("Wrong password", func(t *testing.T) {
		err := auth.ComparePasswordAndHash("wrong-password", hash)
		assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	})

	t.Run("Invalid hash", func(t *testing.T) {
		err := auth.ComparePasswordAndHash(password, "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	})
}
