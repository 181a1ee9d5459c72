package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/pkg/authorize"
	"github.com/medera/medera_backend/pkg/database"
)

// NewMigrateCommand runs ent schema migrations against the application
// database, then prepares the casbin database and seeds the default
// role policies. Safe to run repeatedly.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and seed authorization policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(),
				time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
			defer cancel()

			fmt.Fprintln(cmd.OutOrStdout(), "migrating application schema")
			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("opening ent client: %w", err)
			}
			defer client.Close()
			if err := database.MigrateEnt(ctx, client); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrating casbin schema and seeding policies")
			enforcer, cleanup, err := authorize.NewEnforcer(
				cfg.Authorization.CasbinModelPath,
				database.NewDSN(cfg.CasbinDatabase),
			)
			if err != nil {
				return fmt.Errorf("creating enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("creating authorization: %w", err)
			}
			if err := authorize.SeedDefaultPolicies(ctx, auth); err != nil {
				return fmt.Errorf("seeding policies: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations complete")
			return nil
		},
	}
}
