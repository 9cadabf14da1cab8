package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/service"
)

// handleCreateTeam creates a team owned by the caller.
func (s *Server) handleCreateTeam(c *fiber.Ctx) error {
	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Members     []string `json:"members"`
		TeamImage   []byte   `json:"team_image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: Team name is required", errs.ErrValidation)
	}

	t, err := s.teams.Create(c.Context(), identity(c), service.TeamCreateInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		TeamImage:   req.TeamImage,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Team created", "public_id": t.PublicID})
}

// handleListTeams returns the teams the caller is a member of.
func (s *Server) handleListTeams(c *fiber.Ctx) error {
	teams, err := s.teams.List(c.Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(teams)
}

// handleGetTeam returns a single team; non-members get 404.
func (s *Server) handleGetTeam(c *fiber.Ctx) error {
	t, err := s.teams.Get(c.Context(), identity(c), c.Params("public_id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: Team not found or access denied", errs.ErrNotFound)
		}
		return err
	}
	return c.JSON(t)
}

// handleEditTeam applies a merge-patch, owner only.
func (s *Server) handleEditTeam(c *fiber.Ctx) error {
	var patch model.TeamPatch
	if err := c.BodyParser(&patch); err != nil {
		return fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}

	t, err := s.teams.Edit(c.Context(), identity(c), c.Params("public_id"), patch)
	if err != nil {
		return teamOwnerErr(err)
	}
	return c.JSON(fiber.Map{"message": "Team updated", "public_id": t.PublicID})
}

// handleDeleteTeam removes a team, owner only.
func (s *Server) handleDeleteTeam(c *fiber.Ctx) error {
	publicID := c.Params("public_id")
	if err := s.teams.Delete(c.Context(), identity(c), publicID); err != nil {
		return teamOwnerErr(err)
	}
	return c.JSON(fiber.Map{"message": "Team deleted", "public_id": publicID})
}

// handleInvite appends a user to a team's members list by profile name.
func (s *Server) handleInvite(c *fiber.Ctx) error {
	// Ownership is decided before the body is considered: a malformed body
	// against a foreign or missing team still reports the ownership failure.
	var req struct {
		ProfileName string `json:"profile_name"`
	}
	_ = c.BodyParser(&req)

	t, u, err := s.teams.Invite(c.Context(), identity(c), c.Params("team_name"), req.ProfileName)
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return teamOwnerErr(err)
		}
		return err
	}
	return c.JSON(fiber.Map{
		"message":        fmt.Sprintf("User '%s' invited to team.", u.ProfileName),
		"team_name":      t.Name,
		"user_public_id": u.PublicID,
	})
}

// teamOwnerErr dresses ownership failures in the original wording.
func teamOwnerErr(err error) error {
	if errors.Is(err, errs.ErrForbidden) {
		return fmt.Errorf("%w: You are not the owner of this team", errs.ErrForbidden)
	}
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("%w: Team not found", errs.ErrNotFound)
	}
	return err
}
