package httpapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/service"
)

// dueDateLayouts are the accepted ISO-8601 shapes, widest first.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: Invalid due_date format. Use ISO 8601 format.", errs.ErrValidation)
}

// handleCreateTodo creates an item owned by the caller.
func (s *Server) handleCreateTodo(c *fiber.Ctx) error {
	var req struct {
		Title      string   `json:"title"`
		Summary    string   `json:"summary"`
		DueDate    *string  `json:"due_date"`
		Completed  bool     `json:"completed"`
		Priority   string   `json:"priority"`
		AssignedTo string   `json:"assigned_to"`
		SharedWith []string `json:"shared_with"`
		Visibility string   `json:"visibility"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: Title is required", errs.ErrValidation)
	}

	in := service.TodoCreateInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Completed:  req.Completed,
		Priority:   req.Priority,
		AssignedTo: req.AssignedTo,
		SharedWith: req.SharedWith,
		Visibility: req.Visibility,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return err
		}
		in.DueDate = &due
	}

	t, err := s.todos.Create(c.Context(), identity(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Todo created", "public_id": t.PublicID})
}

// handleListTodos returns the caller's visible set: own items plus items
// assigned to teams the caller belongs to.
func (s *Server) handleListTodos(c *fiber.Ctx) error {
	items, err := s.todos.List(c.Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// handleGetTodo returns a single item, owner only.
func (s *Server) handleGetTodo(c *fiber.Ctx) error {
	t, err := s.todos.Get(c.Context(), identity(c), c.Params("public_id"))
	if err != nil {
		return todoErr(err)
	}
	return c.JSON(t)
}

// handleEditTodo applies a merge-patch, owner only.
func (s *Server) handleEditTodo(c *fiber.Ctx) error {
	var req struct {
		model.TodoPatch
		DueDate *string `json:"due_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return err
		}
		req.TodoPatch.DueDate = &due
	}

	t, err := s.todos.Edit(c.Context(), identity(c), c.Params("public_id"), req.TodoPatch)
	if err != nil {
		return todoErr(err)
	}
	return c.JSON(fiber.Map{"message": "Todo updated", "public_id": t.PublicID})
}

// handleDeleteTodo removes an item, owner only.
func (s *Server) handleDeleteTodo(c *fiber.Ctx) error {
	publicID := c.Params("public_id")
	if err := s.todos.Delete(c.Context(), identity(c), publicID); err != nil {
		return todoErr(err)
	}
	return c.JSON(fiber.Map{"message": "Todo deleted", "public_id": publicID})
}

// handleListTeamTodos returns a team's assigned items behind the membership
// gate: unknown team is 404, non-member is 403.
func (s *Server) handleListTeamTodos(c *fiber.Ctx) error {
	items, err := s.todos.ListByTeam(c.Context(), identity(c), c.Params("team_public_id"))
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return fmt.Errorf("%w: You are not a member of this team", errs.ErrForbidden)
		}
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: Team not found", errs.ErrNotFound)
		}
		return err
	}
	return c.JSON(items)
}

func todoErr(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("%w: Todo not found", errs.ErrNotFound)
	}
	return err
}
