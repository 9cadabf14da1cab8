package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
)

// handleGetSettings returns the caller's settings.
func (s *Server) handleGetSettings(c *fiber.Ctx) error {
	st, err := s.settings.Get(c.Context(), identity(c))
	if err != nil {
		return settingsErr(err)
	}
	return c.JSON(st)
}

// handleEditSettings applies a merge-patch to the caller's settings.
func (s *Server) handleEditSettings(c *fiber.Ctx) error {
	var patch model.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}

	st, err := s.settings.Edit(c.Context(), identity(c), patch)
	if err != nil {
		return settingsErr(err)
	}
	return c.JSON(fiber.Map{"message": "Settings updated", "public_id": st.PublicID})
}

// handleResetSettings restores the fixed defaults. Applying it twice yields
// the same state as once.
func (s *Server) handleResetSettings(c *fiber.Ctx) error {
	st, err := s.settings.Reset(c.Context(), identity(c))
	if err != nil {
		return settingsErr(err)
	}
	return c.JSON(fiber.Map{"message": "Settings reset to default", "public_id": st.PublicID})
}

func settingsErr(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("%w: Settings not found or access denied", errs.ErrNotFound)
	}
	return err
}
