package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/service"
)

// handleSignup creates a new account with default settings.
func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req struct {
		ProfileName    string `json:"profile_name"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		ProfilePicture []byte `json:"profile_picture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: No user data provided", errs.ErrValidation)
	}

	_, err := s.users.Signup(c.Context(), service.SignupInput{
		ProfileName:    req.ProfileName,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return fmt.Errorf("%w: User already exists", errs.ErrAlreadyExists)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "New user created!"})
}

// handleGetUser returns the caller's own profile.
func (s *Server) handleGetUser(c *fiber.Ctx) error {
	u, err := s.users.Get(c.Context(), identity(c), c.Params("public_id"))
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return fmt.Errorf("%w: You can only view your own profile.", errs.ErrForbidden)
		}
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: User not found", errs.ErrNotFound)
		}
		return err
	}
	return c.JSON(fiber.Map{"public_id": u.PublicID, "profile_name": u.ProfileName})
}

// handleEditUser applies a merge-patch to the caller's own profile.
func (s *Server) handleEditUser(c *fiber.Ctx) error {
	var patch model.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}

	u, err := s.users.Edit(c.Context(), identity(c), c.Params("public_id"), patch)
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return fmt.Errorf("%w: You can only edit your own profile.", errs.ErrForbidden)
		}
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: User not found", errs.ErrNotFound)
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "User updated", "public_id": u.PublicID})
}

// handleDeleteUser removes the caller's own account.
func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	publicID := c.Params("public_id")
	if err := s.users.Delete(c.Context(), identity(c), publicID); err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return fmt.Errorf("%w: You can only delete your own account.", errs.ErrForbidden)
		}
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: User not found", errs.ErrNotFound)
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted", "public_id": publicID})
}
