// Package httpapi exposes the HTTP/JSON surface over the application services.
// Handlers parse, delegate, and shape responses; every access decision lives
// in the service/access layers.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"github.com/mkraev/teamtodo/internal/service"
)

// Server wires services into Fiber handlers.
type Server struct {
	log      *zap.Logger
	sessions *session.Store
	auth     service.AuthService
	users    service.UserService
	teams    service.TeamService
	todos    service.TodoService
	settings service.SettingsService
}

// New constructs the HTTP server with injected services.
func New(
	log *zap.Logger,
	sessions *session.Store,
	auth service.AuthService,
	users service.UserService,
	teams service.TeamService,
	todos service.TodoService,
	settings service.SettingsService,
) *Server {
	return &Server{
		log:      log,
		sessions: sessions,
		auth:     auth,
		users:    users,
		teams:    teams,
		todos:    todos,
		settings: settings,
	}
}

// App builds the Fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(RequestLogger(s.log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := app.Group("/auth")
	auth.Post("/login", s.handleLogin)
	auth.Post("/logout", s.handleLogout)

	// Signup is the only unauthenticated user operation.
	app.Post("/users/create", s.handleSignup)

	protected := app.Group("", s.requireSession)

	users := protected.Group("/users")
	users.Get("/:public_id", s.handleGetUser)
	users.Put("/edit/:public_id", s.handleEditUser)
	users.Delete("/delete/:public_id", s.handleDeleteUser)

	teams := protected.Group("/teams")
	teams.Post("/create", s.handleCreateTeam)
	teams.Get("/", s.handleListTeams)
	teams.Post("/invite/:team_name", s.handleInvite)
	teams.Get("/:public_id", s.handleGetTeam)
	teams.Put("/edit/:public_id", s.handleEditTeam)
	teams.Delete("/delete/:public_id", s.handleDeleteTeam)

	todos := protected.Group("/todos")
	todos.Post("/create", s.handleCreateTodo)
	todos.Get("/", s.handleListTodos)
	todos.Get("/team/:team_public_id", s.handleListTeamTodos)
	todos.Get("/:public_id", s.handleGetTodo)
	todos.Put("/edit/:public_id", s.handleEditTodo)
	todos.Delete("/delete/:public_id", s.handleDeleteTodo)

	settings := protected.Group("/settings")
	settings.Get("/", s.handleGetSettings)
	settings.Put("/edit", s.handleEditSettings)
	settings.Post("/reset", s.handleResetSettings)

	return app
}
