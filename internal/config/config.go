package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Log      LogConfig
	Matching MatchingConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// Development reports whether APP_ENV names a local development run.
func (a AppConfig) Development() bool {
	return strings.EqualFold(a.Environment, "development")
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
	MigrationsDir  string
	AutoMigrate    bool
}

// Enabled reports whether enough is configured to open a pool.
func (d DatabaseConfig) Enabled() bool {
	return d.DBHost != "" && d.DBName != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	JWTAccessSecret string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

// MatchingConfig carries engine overrides. A zero value keeps the engine default.
type MatchingConfig struct {
	TaxonomyFile          string
	AcademicGate          float64
	GeographicGate        float64
	ExperienceGate        float64
	EquivalenceThreshold  float64
	RequirementSimilarity float64
	MinGrade              float64
}

type WorkerConfig struct {
	BatchWorkers int
	// BatchRate caps candidate evaluations per second during batch targeting; 0 is unlimited.
	BatchRate int
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

const (
	defaultRedisTTL     = 600 * time.Second
	defaultBatchWorkers = 8

	defaultConnectTimeout = 5
	defaultPoolMaxConns   = 10
)

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("DB_SSL_MODE", "disable")

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}
	optFloat := func(key string) float64 {
		raw := opt(key)
		if raw == "" {
			return 0
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return f
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return n
	}
	optBool := func(key string) bool {
		raw := opt(key)
		if raw == "" {
			return false
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return false
		}
		return b
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout: time.Duration(optInt("DB_CONNECT_TIMEOUT", defaultConnectTimeout)) * time.Second,
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", defaultPoolMaxConns)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 1)),
		MigrationsDir:  opt("DB_MIGRATIONS_DIR"),
		AutoMigrate:    optBool("DB_AUTO_MIGRATE"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      time.Duration(optInt("CACHE_TTL", int(defaultRedisTTL/time.Second))) * time.Second,
	}

	cfg.Auth = AuthConfig{JWTAccessSecret: opt("JWT_ACCESS_SECRET")}

	cfg.Log = LogConfig{
		JSON:  optBool("LOG_JSON"),
		Debug: optBool("LOG_DEBUG"),
	}

	cfg.Matching = MatchingConfig{
		TaxonomyFile:          opt("TAXONOMY_FILE"),
		AcademicGate:          optFloat("MATCH_ACADEMIC_GATE"),
		GeographicGate:        optFloat("MATCH_GEOGRAPHIC_GATE"),
		ExperienceGate:        optFloat("MATCH_EXPERIENCE_GATE"),
		EquivalenceThreshold:  optFloat("MATCH_EQUIVALENCE_THRESHOLD"),
		RequirementSimilarity: optFloat("MATCH_REQUIREMENT_SIMILARITY"),
		MinGrade:              optFloat("MATCH_MIN_GRADE"),
	}
	if t := cfg.Matching.EquivalenceThreshold; t > 1 {
		invalid = append(invalid, "MATCH_EQUIVALENCE_THRESHOLD")
	}
	if s := cfg.Matching.RequirementSimilarity; s > 1 {
		invalid = append(invalid, "MATCH_REQUIREMENT_SIMILARITY")
	}

	cfg.Worker = WorkerConfig{
		BatchWorkers: optInt("BATCH_WORKERS", defaultBatchWorkers),
		BatchRate:    optInt("BATCH_RATE", 0),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
