package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkraev/teamtodo/internal/access"
	"github.com/mkraev/teamtodo/internal/config"
	"github.com/mkraev/teamtodo/internal/migrate"
	"github.com/mkraev/teamtodo/internal/repository/postgres"
	"github.com/mkraev/teamtodo/internal/server/httpapi"
	"github.com/mkraev/teamtodo/internal/service"
	sessionstore "github.com/mkraev/teamtodo/internal/session"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if flagDSN != "" {
				cfg.Database.DSN = flagDSN
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func serve(cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Error("migrate up", zap.Error(err))
		return err
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("connect postgres", zap.Error(err))
		return err
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	teamRepo := postgres.NewTeamRepo(db)
	todoRepo := postgres.NewTodoRepo(db)

	// Access core + services
	authz := access.NewAuthorizer(teamRepo, todoRepo)
	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo, authz)
	teamSvc := service.NewTeamService(teamRepo, userRepo, authz)
	todoSvc := service.NewTodoService(todoRepo, authz)
	settingsSvc := service.NewSettingsService(settingsRepo)

	// Cookie sessions, stored server-side in Postgres
	sessions := session.New(session.Config{
		Storage:        sessionstore.NewStorage(db),
		Expiration:     cfg.Session.TTL(),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   cfg.Server.CookieSecure,
	})

	app := httpapi.New(logger, sessions, authSvc, userSvc, teamSvc, todoSvc, settingsSvc).App()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		errCh <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case <-ctx.Done():
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
	}

	logger.Info("shutdown complete")
	return nil
}
