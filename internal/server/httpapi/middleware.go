package httpapi

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mkraev/teamtodo/internal/errs"
)

// identityKey is the Locals slot holding the session identity, and also the
// session payload key carrying it.
const identityKey = "user_public_id"

// RequestLogger logs request metadata only, never payloads.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// requireSession resolves the session before any authorization decision and
// stashes the authenticated identity in Locals.
func (s *Server) requireSession(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("%w: You must be logged in to access this page.", errs.ErrUnauthorized)
	}
	id, ok := sess.Get(identityKey).(string)
	if !ok || id == "" {
		return fmt.Errorf("%w: You must be logged in to access this page.", errs.ErrUnauthorized)
	}
	c.Locals(identityKey, id)
	return c.Next()
}

// identity returns the authenticated user's public id set by requireSession.
func identity(c *fiber.Ctx) string {
	id, _ := c.Locals(identityKey).(string)
	return id
}
