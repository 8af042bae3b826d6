package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

// AuthController exposes registration and login
type AuthController struct {
	auther auth.Authenticator
	logger auth.Logger
}

func NewAuthController(auther auth.Authenticator, logger auth.Logger) *AuthController {
	if logger == nil {
		logger = noopLogger{}
	}
	return &AuthController{
		auther: auther,
		logger: logger,
	}
}

// RegisterRequest is the signup payload
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required,
			validation.Length(3, 255),
		),
		validation.Field(
			&r.Password,
			validation.Required,
			validation.Length(6, 255),
		),
		validation.Field(
			&r.Role,
			validation.Required,
			validation.In(auth.RoleUser, auth.RoleAdmin),
		),
	)
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse carries the issued token back to the caller
type TokenResponse struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user,omitempty"`
}

// Register creates a new account. Duplicate usernames surface as 409; the
// response never carries the password hash.
func (a *AuthController) Register(c *fiber.Ctx) error {
	payload := new(RegisterRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid registration payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "registration validation failed").
			WithCode(errors.CodeBadRequest).
			WithTextCode(auth.TextCodeValidation)
	}

	user, err := a.auther.Register(c.UserContext(), payload.Username, payload.Password, auth.UserRole(payload.Role))
	if err != nil {
		return err
	}

	a.logger.Info("registered user", "username", user.Username)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords are indistinguishable in the response.
func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid login payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "login validation failed").
			WithCode(errors.CodeBadRequest).
			WithTextCode(auth.TextCodeValidation)
	}

	token, err := a.auther.Login(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{Token: token})
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
