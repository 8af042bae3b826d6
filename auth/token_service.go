package auth

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenService issues and verifies signed tokens. Issuing and decoding are
// pure computations over the shared read only signing key, safe to call from
// any number of goroutines without locking.
type TokenService interface {
	Generate(identity Identity) (string, error)
	SignClaims(claims *TokenClaims) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
	IsExpired(claims AuthClaims) bool
	IsValid(tokenString, expectedSubject string) bool
}

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	signingKey []byte
	validity   time.Duration
	issuer     string
	audience   jwt.ClaimStrings
	logger     Logger
}

// DefaultTokenValidity is the validity window applied when none is configured:
// 8,400,000 ms, i.e. 140 minutes.
const DefaultTokenValidity = 140 * time.Minute

// NewTokenService creates a new TokenService instance
func NewTokenService(signingKey []byte, validity time.Duration, issuer string, audience jwt.ClaimStrings, logger Logger) TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenServiceImpl{
		signingKey: signingKey,
		validity:   validity,
		issuer:     issuer,
		audience:   audience,
		logger:     logger,
	}
}

// DecodeSigningKey decodes the externally supplied base64url encoded secret
// into raw key bytes. Both padded and unpadded forms are accepted.
func DecodeSigningKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, ErrNoEmptyString
	}
	if key, err := base64.RawURLEncoding.DecodeString(encoded); err == nil {
		return key, nil
	}
	key, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "signing key is not valid base64url")
	}
	return key, nil
}

// Generate creates a signed token for the identity. Claims carry the subject,
// issue time, expiry, and the account role.
func (ts *TokenServiceImpl) Generate(identity Identity) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   identity.Username(),
			Audience:  ts.audience,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.validity)),
		},
		UserRole: identity.Role(),
	}

	return ts.SignClaims(claims)
}

// SignClaims signs claims using the configured signing key.
func (ts *TokenServiceImpl) SignClaims(claims *TokenClaims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign token")
	}

	return signedString, nil
}

// Validate parses a token string, verifying the signature before any claim is
// trusted, and returns the structured claims. Expiry is reported distinctly
// from signature or structural failures so callers can log "stale" and
// "tampered" separately; no caller should surface that distinction outward.
func (ts *TokenServiceImpl) Validate(tokenString string) (*TokenClaims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 2)
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}
	if len(ts.audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(ts.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
				WithTextCode(ErrTokenMalformed.TextCode)
		}
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("TokenService validate could not decode claims")
	return nil, ErrTokenMalformed
}

// IsExpired reports whether the claims are past their expiry. A token whose
// exp equals the current instant is already expired.
func (ts *TokenServiceImpl) IsExpired(claims AuthClaims) bool {
	exp := claims.Expires()
	if exp.IsZero() {
		return true
	}
	return !time.Now().Before(exp)
}

// IsValid reports whether the token decodes with a valid signature, carries
// the expected subject, and has not expired. Any single failing condition
// invalidates the token.
func (ts *TokenServiceImpl) IsValid(tokenString, expectedSubject string) bool {
	claims, err := ts.Validate(tokenString)
	if err != nil {
		return false
	}
	if claims.Subject() != expectedSubject {
		return false
	}
	return !ts.IsExpired(claims)
}
