// cmd/server/main.go
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/unclebandit/influencer-portal/internal/config"
	"github.com/unclebandit/influencer-portal/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var skipMigrate bool

	root := &cobra.Command{
		Use:           "server",
		Short:         "Influencer portal API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, !skipMigrate)
		},
	}
	root.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply pending migrations on startup")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runMigrations(cmd.Context(), cfg)
		},
	})
	return root
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}
