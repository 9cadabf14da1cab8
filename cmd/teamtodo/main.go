// Command teamtodo starts the team to-do HTTP server or runs maintenance
// commands against its database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgPath string
	flagDSN string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "teamtodo",
		Short:   "Multi-tenant team to-do backend",
		Version: version,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	root.PersistentFlags().StringVar(&flagDSN, "dsn", "", "PostgreSQL DSN (overrides config)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	return root
}
