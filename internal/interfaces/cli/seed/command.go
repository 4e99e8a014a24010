package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/config"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/database"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/seeds"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Insert units, sectors, users, categories, locals and equipment from a YAML file. Entries that already exist are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithComponent("seed")

	data, err := seeds.Load(file)
	if err != nil {
		return err
	}
	if data.TenantID == 0 {
		data.TenantID = cfg.Tenant.DefaultID
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	summary, err := seeds.NewSeeder(database.Get(), hasher, log).Apply(context.Background(), data)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	log.Infow("seed completed",
		"file", file,
		"tenant_id", data.TenantID,
		"units", summary.Units,
		"sectors", summary.Sectors,
		"users", summary.Users,
		"categories", summary.Categories,
		"locals", summary.Locals,
		"equipamentos", summary.Equipamentos,
		"motores", summary.Motores)
	return nil
}
