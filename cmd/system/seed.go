package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mobiusclinic/clinica_backend/config"
	"github.com/mobiusclinic/clinica_backend/internal/service/preset"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
	"github.com/mobiusclinic/clinica_backend/pkg/database"
)

// NewSeedCommand loads the baseline data a fresh deployment needs: the
// mental-state vocabulary and the Casbin role policies.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed mental-state presets and authorization policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Println("Seeding mental-state presets.")
			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			created, err := preset.New(client).Seed(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed presets: %w", err)
			}
			fmt.Printf("Presets seeded (%d created).\n", created)

			fmt.Println("Seeding Casbin policies.")
			dsn := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}
			if err := authorize.SeedDefaultPolicies(ctx, auth); err != nil {
				return fmt.Errorf("failed to seed policies: %w", err)
			}

			fmt.Println("Seeding finished successfully.")
			return nil
		},
	}

	return cmd
}
