package cmd

import (
	"github.com/deppfellow/ladder-stats/internal/config"
	"github.com/deppfellow/ladder-stats/internal/database"
	"github.com/deppfellow/ladder-stats/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		log := logger.NewLogger(cfg.Observability.GetLogLevel(), cfg.Observability.IsProduction())

		if err := database.Migrate(cmd.Context(), &log, cfg); err != nil {
			log.Error().Err(err).Msg("migration failed")
			return err
		}

		log.Info().Msg("database is up to date")

		return nil
	},
}
