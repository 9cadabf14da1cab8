package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mkraev/teamtodo/internal/errs"
)

// handleLogin verifies credentials and binds the user's public id to a fresh
// session cookie.
func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: Email and password required", errs.ErrValidation)
	}

	u, err := s.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return fmt.Errorf("%w: Username / Password is incorrect", errs.ErrUnauthorized)
		}
		return err
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(identityKey, u.PublicID)
	if err := sess.Save(); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Login successful", "public_id": u.PublicID})
}

// handleLogout drops the session and clears the cookie. Safe to call without
// a session.
func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
