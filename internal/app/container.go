package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"career-match/internal/config"
	"career-match/internal/database"
	"career-match/internal/database/migration"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"
	"career-match/internal/usecase"
	"career-match/internal/ws"
	"career-match/migrations"
)

const (
	connectTimeout = 10 * time.Second
	tokenTTL       = time.Hour
)

// ErrAuthRequired is returned when the API would be served without token checks outside development.
var ErrAuthRequired = errors.New("JWT_ACCESS_SECRET is required outside development")

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	Engines *Engines

	// DB is nil when no database is configured; batch targeting and stored progression then answer 503.
	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   jwt.Service

	Equivalence usecase.EquivalenceUsecase
	Targeting   usecase.TargetingUsecase
	Progression usecase.ProgressionUsecase
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.Auth.JWTAccessSecret == "" && !cfg.App.Development() {
		return nil, ErrAuthRequired
	}

	engines, err := NewEngines(cfg.Matching)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: log, Engines: engines}

	if cfg.Database.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		c.DB = db

		if cfg.Database.AutoMigrate {
			r := migration.Runner{Dir: cfg.Database.MigrationsDir, FS: migrations.FS, Logger: log}
			if err := r.Run(ctx, db.SQLDB()); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
	} else {
		log.Warn("database not configured, stored-record endpoints disabled")
	}

	c.Cache = cache.NewRedis(cfg.Redis, log)
	c.Hub = ws.NewHub(log)
	if secret := cfg.Auth.JWTAccessSecret; secret != "" {
		c.JWT = jwt.NewHMACService(secret, tokenTTL)
	} else {
		log.Warn("JWT_ACCESS_SECRET not set, /api/v1 is unauthenticated in development")
	}

	candidates := repository.NewPostgresCandidateRepository(c.DB)
	jobs := repository.NewPostgresJobPostingRepository(c.DB)

	c.Equivalence = usecase.NewEquivalenceUsecase(engines.Resolver, c.Cache, usecase.EquivalenceConfig{
		CacheTTL:      cfg.Redis.TTL,
		Workers:       cfg.Worker.BatchWorkers,
		MinSimilarity: cfg.Matching.RequirementSimilarity,
	}, log)
	c.Targeting = usecase.NewTargetingUsecase(engines.Targeting, jobs, candidates, c.Cache, ws.NewNotifier(c.Hub), usecase.TargetingConfig{
		Workers:       cfg.Worker.BatchWorkers,
		RatePerSecond: cfg.Worker.BatchRate,
	}, log)
	c.Progression = usecase.NewProgressionUsecase(engines.Tracker, candidates, c.Cache, cfg.Redis.TTL, log)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
