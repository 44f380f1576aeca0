package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"career-match/internal/config"
	"career-match/internal/database/migration"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/database/seeder"
	"career-match/internal/infrastructure/cache"
	"career-match/migrations"
)

func (c *cli) migrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database, c.logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if dir == "" {
				dir = cfg.Database.MigrationsDir
			}
			r := migration.Runner{Dir: dir, FS: migrations.FS, Logger: c.logger}
			return r.Run(ctx, db.SQLDB())
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "a directory of V<n>__<name>.sql files (default is the embedded schema)")
	return cmd
}

func (c *cli) seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <fixtures.json>",
		Short: "Upsert candidates and job postings from a fixture file into the configured database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := seeder.LoadFixtures(args[0])
			if err != nil {
				return err
			}

			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database, c.logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := (seeder.Runner{Seeders: fixtures.Seeders()}).Run(ctx, db); err != nil {
				return err
			}

			// Stored progression results for reseeded candidates are stale now.
			rc := cache.NewRedis(cfg.Redis, c.logger)
			defer func() {
				_ = rc.Close()
			}()
			for _, rec := range fixtures.Candidates {
				if rec.ID == uuid.Nil {
					continue
				}
				if err := rc.InvalidateCandidate(ctx, rec.ID.String()); err != nil {
					c.logger.Warn("cache invalidation failed", zap.String("candidate_id", rec.ID.String()), zap.Error(err))
				}
			}
			c.logger.Info("fixtures seeded",
				zap.Int("candidates", len(fixtures.Candidates)),
				zap.Int("job_postings", len(fixtures.JobPostings)),
			)
			return nil
		},
	}
	return cmd
}
