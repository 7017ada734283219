// cmd/seeder/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/unclebandit/influencer-portal/internal/config"
	"github.com/unclebandit/influencer-portal/internal/db"
	"github.com/unclebandit/influencer-portal/internal/logger"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:           "seeder",
		Short:         "Migrate the database and load the sample seed data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)

			ctx := cmd.Context()
			conn, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer conn.Close()

			if _, err := db.Migrate(ctx, conn); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			files, err := seedFiles(dir)
			if err != nil {
				return err
			}
			if err := runSeeds(ctx, conn, files); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database seeding completed successfully!")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "seed", "directory holding *.sql seed files")
	return cmd
}

// seedFiles lists dir's .sql files in name order.
func seedFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("bad seed directory %q: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func runSeeds(ctx context.Context, conn execer, files []string) error {
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute seed file %s: %w", file, err)
		}
		log.Info().Str("file", file).Msg("seeded")
	}
	return nil
}
