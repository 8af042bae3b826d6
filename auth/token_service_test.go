package auth_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

var (
	testSigningKey = []byte("test-signing-key")
	testIssuer     = "test-issuer"
	testAudience   = jwt.ClaimStrings{"test-audience"}
)

func newTestTokenService(validity time.Duration) auth.TokenService {
	return auth.NewTokenService(testSigningKey, validity, testIssuer, testAudience, nil)
}

func TestNewTokenService(t *testing.T) {
	t.Run("creates token service with logger", func(t *testing.T) {
		service := auth.NewTokenService(testSigningKey, time.Hour, testIssuer, testAudience, &MockLogger{})
		assert.NotNil(t, service)
	})

	t.Run("creates token service with nil logger", func(t *testing.T) {
		service := auth.NewTokenService(testSigningKey, time.Hour, testIssuer, testAudience, nil)
		assert.NotNil(t, service)
	})

	t.Run("falls back to the default validity window", func(t *testing.T) {
		service := newTestTokenService(0)

		token, err := service.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleUser})
		require.NoError(t, err)

		claims, err := service.Validate(token)
		require.NoError(t, err)

		expected := time.Now().Add(auth.DefaultTokenValidity)
		assert.WithinDuration(t, expected, claims.Expires(), 5*time.Second)
	})
}

func TestTokenService_Generate(t *testing.T) {
	service := newTestTokenService(time.Hour)

	t.Run("generates a valid signed token", func(t *testing.T) {
		identity := TestIdentity{id: "user-123", username: "testuser", role: auth.RoleAdmin}

		tokenString, err := service.Generate(identity)
		require.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.ParseWithClaims(tokenString, &auth.TokenClaims{}, func(token *jwt.Token) (any, error) {
			return testSigningKey, nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(*auth.TokenClaims)
		require.True(t, ok)
		assert.Equal(t, "testuser", claims.Subject())
		assert.Equal(t, auth.RoleAdmin, claims.Role())
		assert.Equal(t, testIssuer, claims.RegisteredClaims.Issuer)
		assert.Equal(t, testAudience, claims.RegisteredClaims.Audience)
		assert.NotNil(t, claims.RegisteredClaims.IssuedAt)
		assert.NotNil(t, claims.RegisteredClaims.ExpiresAt)
	})

	t.Run("expiry is issued-at plus the validity window", func(t *testing.T) {
		tokenString, err := service.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleUser})
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, claims.Expires().Sub(claims.IssuedAt()))
	})
}

func TestTokenService_Validate(t *testing.T) {
	service := newTestTokenService(time.Hour)

	t.Run("round-trips its own tokens", func(t *testing.T) {
		tokenString, err := service.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleUser})
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "testuser", claims.Subject())
		assert.Equal(t, auth.RoleUser, claims.Role())
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		forger := auth.NewTokenService([]byte("some-other-key"), time.Hour, testIssuer, testAudience, nil)
		forged, err := forger.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleAdmin})
		require.NoError(t, err)

		claims, err := service.Validate(forged)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenSignatureInvalid)
	})

	t.Run("rejects a token whose payload was altered after signing", func(t *testing.T) {
		tokenString, err := service.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleUser})
		require.NoError(t, err)

		// swap the role claim in the payload without re-signing
		tampered := tamperRoleClaim(t, tokenString)

		claims, err := service.Validate(tampered)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenSignatureInvalid)
	})

	t.Run("rejects garbage input as malformed", func(t *testing.T) {
		claims, err := service.Validate("not-a-token")
		assert.Nil(t, claims)
		require.Error(t, err)
		assert.False(t, auth.IsTokenExpiredError(err))

		var richErr *goerrors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, auth.TextCodeInvalidToken, richErr.TextCode)
	})

	t.Run("rejects an expired token distinctly", func(t *testing.T) {
		expired := signClaims(t, service, &auth.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "testuser",
				Audience:  testAudience,
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			UserRole: auth.RoleUser,
		})

		claims, err := service.Validate(expired)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
		assert.True(t, auth.IsTokenExpiredError(err))
	})

	t.Run("rejects a token minted for a different issuer", func(t *testing.T) {
		stranger := auth.NewTokenService(testSigningKey, time.Hour, "some-other-issuer", testAudience, nil)
		tokenString, err := stranger.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleUser})
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestTokenService_IsExpired(t *testing.T) {
	service := newTestTokenService(time.Hour)

	tests := []struct {
		name    string
		expires *jwt.NumericDate
		want    bool
	}{
		{
			name:    "future expiry is not expired",
			expires: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			want:    false,
		},
		{
			name:    "past expiry is expired",
			expires: jwt.NewNumericDate(time.Now().Add(-time.Second)),
			want:    true,
		},
		{
			name:    "expiry equal to now is already expired",
			expires: jwt.NewNumericDate(time.Now()),
			want:    true,
		},
		{
			name:    "missing expiry is treated as expired",
			expires: nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &auth.TokenClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "testuser",
					ExpiresAt: tt.expires,
				},
			}
			assert.Equal(t, tt.want, service.IsExpired(claims))
		})
	}
}

func TestTokenService_IsValid(t *testing.T) {
	service := newTestTokenService(time.Hour)

	tokenString, err := service.Generate(TestIdentity{id: "user-123", username: "testuser", role: auth.RoleUser})
	require.NoError(t, err)

	t.Run("accepts a fresh token with the expected subject", func(t *testing.T) {
		assert.True(t, service.IsValid(tokenString, "testuser"))
	})

	t.Run("rejects a subject mismatch", func(t *testing.T) {
		assert.False(t, service.IsValid(tokenString, "someone-else"))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		assert.False(t, service.IsValid("not-a-token", "testuser"))
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := signClaims(t, service, &auth.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "testuser",
				Audience:  testAudience,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		assert.False(t, service.IsValid(expired, "testuser"))
	})
}

func TestDecodeSigningKey(t *testing.T) {
	rawKey := []byte("a-32-byte-signing-key-for-tests!")

	t.Run("decodes an unpadded base64url key", func(t *testing.T) {
		decoded, err := auth.DecodeSigningKey(base64.RawURLEncoding.EncodeToString(rawKey))
		require.NoError(t, err)
		assert.Equal(t, rawKey, decoded)
	})

	t.Run("decodes a padded base64url key", func(t *testing.T) {
		decoded, err := auth.DecodeSigningKey(base64.URLEncoding.EncodeToString(rawKey))
		require.NoError(t, err)
		assert.Equal(t, rawKey, decoded)
	})

	t.Run("rejects an empty key", func(t *testing.T) {
		decoded, err := auth.DecodeSigningKey("")
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, auth.ErrNoEmptyString)
	})

	t.Run("rejects input that is not base64url", func(t *testing.T) {
		decoded, err := auth.DecodeSigningKey("!!not base64!!")
		assert.Nil(t, decoded)
		assert.Error(t, err)
	})
}

func signClaims(t *testing.T, service auth.TokenService, claims *auth.TokenClaims) string {
	t.Helper()
	tokenString, err := service.SignClaims(claims)
	require.NoError(t, err)
	return tokenString
}

// tamperRoleClaim rewrites the payload segment of a compact JWT so the role
// claim reads admin, leaving the original signature in place.
func tamperRoleClaim(t *testing.T, tokenString string) string {
	t.Helper()

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	altered := strings.Replace(string(payload), `"role":"user"`, `"role":"admin"`, 1)
	require.NotEqual(t, string(payload), altered)

	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(altered))
	return strings.Join(parts, ".")
}
