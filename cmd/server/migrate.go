package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recruit/internal/platform/database"
	"recruit/internal/platform/logger"
)

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)
			ctx := cmd.Context()

			applied, err := database.Migrate(ctx, cfg.Database.URL, log)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				log.Info("schema is up to date")
				return nil
			}
			log.Info("migrations applied", "count", len(applied), "last", applied[len(applied)-1])
			return nil
		},
	}
}
