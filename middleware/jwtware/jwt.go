// Package jwtware is the request authenticator: it intercepts each inbound
// request, validates the bearer token, and publishes the authenticated
// principal into the request scoped context before business handlers run.
package jwtware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

var (
	defaultTokenLookup       = "header:" + fiber.HeaderAuthorization
	ErrJWTMissingOrMalformed = errors.New("missing or malformed JWT")
)

// TokenValidator validates raw tokens. It mirrors the relevant slice of
// auth.TokenService so tests can swap in stubs.
type TokenValidator interface {
	Validate(tokenString string) (*auth.TokenClaims, error)
	IsValid(tokenString, expectedSubject string) bool
}

// PrincipalLoader resolves the principal for a validated token's subject
type PrincipalLoader interface {
	FindIdentityByUsername(ctx context.Context, username string) (auth.Identity, error)
}

type Config struct {
	// Filter skips the middleware entirely when it returns true
	Filter func(*fiber.Ctx) bool
	// SuccessHandler runs after the principal is published; defaults to Next
	SuccessHandler fiber.Handler
	// ErrorHandler renders rejected requests; defaults to a generic 401
	ErrorHandler fiber.ErrorHandler
	// TokenValidator is required for token validation
	TokenValidator TokenValidator
	// PrincipalLoader is required to resolve the token subject
	PrincipalLoader PrincipalLoader

	ContextKey  string
	TokenLookup string
	AuthScheme  string

	Logger auth.Logger
}

// New returns the request authenticator middleware. It is stateless across
// requests: every mutable value it produces lives in the request's own
// context. Per request:
//
//	no bearer header        -> continue anonymous, empty security context
//	malformed or forged     -> 401, pipeline short-circuits
//	expired                 -> 401, distinct internal diagnostic
//	valid                   -> load principal, publish once, continue
func New(config ...Config) fiber.Handler {
	cfg := GetDefaultConfig(config...)
	extractors := cfg.getExtractors()

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := ExtractRawToken(c, extractors)
		if err != nil {
			// Anonymous access is legal at this layer; authorization for
			// protected routes happens downstream.
			return c.Next()
		}

		claims, err := cfg.TokenValidator.Validate(raw)
		if err != nil {
			if auth.IsTokenExpiredError(err) {
				cfg.Logger.Warn("rejected expired token", "path", c.Path())
			} else {
				cfg.Logger.Warn("rejected invalid token", "path", c.Path())
			}
			return cfg.ErrorHandler(c, auth.ErrTokenInvalid)
		}

		// One authentication per request: never overwrite an existing principal.
		if _, ok := auth.PrincipalFromContext(c.UserContext()); ok {
			return cfg.SuccessHandler(c)
		}

		identity, err := cfg.PrincipalLoader.FindIdentityByUsername(c.UserContext(), claims.Subject())
		if err != nil {
			if errors.Is(err, auth.ErrIdentityNotFound) {
				cfg.Logger.Warn("token subject no longer resolves", "path", c.Path())
				return cfg.ErrorHandler(c, auth.ErrTokenInvalid)
			}
			cfg.Logger.Error("principal lookup failed", "error", err)
			return cfg.ErrorHandler(c, err)
		}

		if !cfg.TokenValidator.IsValid(raw, identity.Username()) {
			cfg.Logger.Warn("token failed final validation", "path", c.Path())
			return cfg.ErrorHandler(c, auth.ErrTokenInvalid)
		}

		principal := auth.PrincipalFromIdentity(identity)
		c.Locals(cfg.ContextKey, principal)
		c.SetUserContext(auth.WithPrincipal(c.UserContext(), principal))

		return cfg.SuccessHandler(c)
	}
}

// RequireAuthenticated rejects requests that reached the handler without a
// principal. Pair it with New on protected route groups.
func RequireAuthenticated(errorHandler fiber.ErrorHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := auth.PrincipalFromContext(c.UserContext()); !ok {
			return errorHandler(c, auth.ErrTokenInvalid)
		}
		return c.Next()
	}
}

// RequireRole rejects authenticated requests whose principal is below minRole
func RequireRole(minRole auth.UserRole, errorHandler fiber.ErrorHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c.UserContext())
		if !ok {
			return errorHandler(c, auth.ErrTokenInvalid)
		}
		if !auth.IsAtLeast(principal.Role, minRole) {
			return fiber.NewError(fiber.StatusForbidden, "access denied")
		}
		return c.Next()
	}
}

func GetDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid or expired token")
		}
	}

	if cfg.TokenValidator == nil {
		panic("AUTH: JWT middleware configuration: TokenValidator is required.")
	}

	if cfg.PrincipalLoader == nil {
		panic("AUTH: JWT middleware configuration: PrincipalLoader is required.")
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "principal"
	}

	if cfg.TokenLookup == "" {
		cfg.TokenLookup = defaultTokenLookup
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}

	return cfg
}

// PrincipalFromLocals reads the principal stored by the middleware for
// handlers that only have the fiber context at hand.
func PrincipalFromLocals(c *fiber.Ctx, key string) (auth.Principal, bool) {
	if key == "" {
		key = "principal"
	}
	raw := c.Locals(key)
	if raw == nil {
		return auth.Principal{}, false
	}
	principal, ok := raw.(auth.Principal)
	return principal, ok
}

func (cfg *Config) getExtractors() []TokenExtractor {
	return GetExtractors(cfg.TokenLookup, cfg.AuthScheme)
}

// ExtractRawToken runs the extractors in order and returns the first match
func ExtractRawToken(c *fiber.Ctx, extractors []TokenExtractor) (string, error) {
	var raw string
	var err error

	for _, extractor := range extractors {
		raw, err = extractor(c)
		if raw != "" && err == nil {
			break
		}
	}

	return raw, err
}

// GetExtractors parses a lookup expression like
// "header:Authorization,query:auth_token" into extractor functions.
func GetExtractors(tokenLookup string, authSchemes ...string) []TokenExtractor {
	extractors := make([]TokenExtractor, 0)

	authScheme := "Bearer"
	if len(authSchemes) > 0 {
		authScheme = authSchemes[0]
	}

	rootParts := strings.Split(tokenLookup, ",")
	for _, rootPart := range rootParts {
		parts := strings.Split(strings.TrimSpace(rootPart), ":")
		if len(parts) < 2 {
			continue
		}

		for i, el := range parts {
			parts[i] = strings.TrimSpace(el)
		}

		switch parts[0] {
		case "header":
			extractors = append(extractors, tokenFromHeader(parts[1], authScheme))
		case "query":
			extractors = append(extractors, tokenFromQuery(parts[1]))
		case "cookie":
			extractors = append(extractors, tokenFromCookie(parts[1]))
		}
	}

	return extractors
}

type TokenExtractor func(c *fiber.Ctx) (string, error)

// tokenFromHeader returns a function that extracts the token from the request
// header, enforcing the scheme marker prefix.
func tokenFromHeader(header string, authScheme string) TokenExtractor {
	return func(c *fiber.Ctx) (string, error) {
		a := c.Get(header)
		authScheme = strings.TrimSpace(authScheme)
		l := len(authScheme)
		if l == 0 {
			return "", ErrJWTMissingOrMalformed
		}
		if len(a) > l+1 && strings.EqualFold(a[:l], authScheme) {
			return strings.TrimSpace(a[l:]), nil
		}
		return "", ErrJWTMissingOrMalformed
	}
}

// tokenFromQuery returns a function that extracts the token from the query string
func tokenFromQuery(param string) TokenExtractor {
	return func(c *fiber.Ctx) (string, error) {
		token := c.Query(param)
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}

// tokenFromCookie returns a function that extracts the token from the named cookie
func tokenFromCookie(name string) TokenExtractor {
	return func(c *fiber.Ctx) (string, error) {
		token := c.Cookies(name)
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
