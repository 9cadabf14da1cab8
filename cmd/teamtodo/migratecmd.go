package main

import (
	"github.com/spf13/cobra"

	"github.com/mkraev/teamtodo/internal/config"
	"github.com/mkraev/teamtodo/internal/migrate"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if flagDSN != "" {
				cfg.Database.DSN = flagDSN
			}
			return migrate.Up(cmd.Context(), cfg.Database.DSN)
		},
	}
}
