package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mkraev/teamtodo/internal/errs"
)

// statusFor maps sentinel errors onto the HTTP taxonomy. Uniqueness
// conflicts report as 400, matching the original surface.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrAlreadyExists):
		return fiber.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

var sentinels = []error{
	errs.ErrValidation,
	errs.ErrAlreadyExists,
	errs.ErrUnauthorized,
	errs.ErrForbidden,
	errs.ErrNotFound,
}

// messageFor extracts the user-facing message, stripping the sentinel prefix
// that fmt.Errorf("%w: ...") wrapping leaves in front.
func messageFor(err error) string {
	msg := err.Error()
	for _, s := range sentinels {
		if p := s.Error() + ": "; strings.HasPrefix(msg, p) {
			return strings.TrimPrefix(msg, p)
		}
	}
	switch {
	case errors.Is(err, errs.ErrValidation):
		return "Invalid input"
	case errors.Is(err, errs.ErrAlreadyExists):
		return "Already exists"
	case errors.Is(err, errs.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, errs.ErrForbidden):
		return "Forbidden"
	case errors.Is(err, errs.ErrNotFound):
		return "Not found"
	}
	return "Internal server error"
}

// errorHandler is the single place errors become JSON responses. Internal
// details never reach the client; 5xx causes are logged instead.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(code).JSON(fiber.Map{"error": messageFor(err)})
}
