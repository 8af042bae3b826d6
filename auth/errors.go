package auth

import (
	stderrors "errors"
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCredentials = "INVALID_CREDENTIALS"
	TextCodeInvalidToken       = "INVALID_TOKEN"
	TextCodeUserExists         = "USER_ALREADY_EXISTS"
	TextCodeValidation         = "VALIDATION_ERROR"
	TextCodeInternal           = "INTERNAL_SERVER_ERROR"
)

// ErrIdentityNotFound is the error we return for not found identities
var ErrIdentityNotFound = stderrors.New("identity not found")

// ErrMismatchedHashAndPassword is returned when a password does not match its hash
var ErrMismatchedHashAndPassword = stderrors.New("mismatched password and hash")

// ErrNoEmptyString is returned when we get an empty string where a value is required
var ErrNoEmptyString = stderrors.New("string cannot be empty")

// ErrInvalidCredentials is the only credential failure the boundary ever sees;
// it deliberately covers both unknown usernames and bad passwords.
var ErrInvalidCredentials = errors.New("invalid username or password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a well formed token is past its expiry.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token is structurally invalid.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrTokenSignatureInvalid is returned when a token signature does not verify.
var ErrTokenSignatureInvalid = errors.New("token signature is invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrTokenInvalid is the generic boundary error for any rejected token. The
// expired/malformed/forged distinction stays in logs, never in responses.
var ErrTokenInvalid = errors.New("invalid or expired token", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrUserAlreadyExists is returned when registering a username that is taken.
var ErrUserAlreadyExists = errors.New("user already exists", errors.CategoryConflict).
	WithTextCode(TextCodeUserExists).
	WithCode(errors.CodeConflict)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
