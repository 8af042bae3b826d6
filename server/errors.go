package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

// ErrorResponse is the wire shape of every error leaving the service
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Error     string    `json:"error"`
}

// ErrorHandler renders rich errors as ErrorResponse bodies. Anything without
// a category is reported as a generic 500 so internal detail never leaks.
func ErrorHandler(logger auth.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var richErr *errors.Error
		if !errors.As(err, &richErr) {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(ErrorResponse{
					Status:    fe.Code,
					Message:   fe.Message,
					Timestamp: time.Now().UTC(),
					Path:      c.Path(),
					Error:     codeForStatus(fe.Code),
				})
			}

			logger.Error("unexpected error", "error", err, "path", c.Path())
			richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
				WithCode(errors.CodeInternal).
				WithTextCode(auth.TextCodeInternal)
		}

		status := richErr.Code
		if status == 0 {
			status = fiber.StatusInternalServerError
		}

		message := richErr.Message
		textCode := richErr.TextCode
		if richErr.Category == errors.CategoryInternal {
			// Internal failures are reported generically.
			message = "An unexpected server error occurred"
			textCode = auth.TextCodeInternal
			status = fiber.StatusInternalServerError
			logger.Error("internal error", "error", err, "path", c.Path())
		}

		if textCode == "" {
			textCode = codeForStatus(status)
		}

		return c.Status(status).JSON(ErrorResponse{
			Status:    status,
			Message:   message,
			Timestamp: time.Now().UTC(),
			Path:      c.Path(),
			Error:     textCode,
		})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusUnauthorized:
		return auth.TextCodeInvalidToken
	case fiber.StatusConflict:
		return auth.TextCodeUserExists
	case fiber.StatusBadRequest:
		return auth.TextCodeValidation
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusForbidden:
		return "ACCESS_DENIED"
	default:
		return auth.TextCodeInternal
	}
}
