package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/pkg/database"
)

// NewInitCommand creates the application and casbin databases if they do
// not exist yet. It runs before migrate on a fresh Postgres instance.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configured databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			if err := database.InitializeDatabases(cfg); err != nil {
				return fmt.Errorf("initializing databases: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "databases ready")
			return nil
		},
	}
}
