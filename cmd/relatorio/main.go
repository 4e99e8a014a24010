package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relatorio-inc/relatorio/internal/interfaces/cli/migrate"
	"github.com/relatorio-inc/relatorio/internal/interfaces/cli/seed"
	"github.com/relatorio-inc/relatorio/internal/interfaces/cli/server"
)

// @title Relatorio API
// @version 1.0
// @description Maintenance reporting service: locations, equipment, reports, notifications and analytics.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "relatorio",
		Short: "Relatorio - maintenance reporting service",
		Long:  `Relatorio tracks maintenance reports for locals, equipment and motors, with server, migration and seed commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
