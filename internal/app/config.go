package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	dbpkg "github.com/crumbs/restaurant-service/internal/data/db"
	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/pkg/envutil"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

// metricsDisabled turns the metrics listener off when set as METRICS_ADDR.
const metricsDisabled = "off"

type Config struct {
	HTTPAddr        string        `yaml:"http_addr"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	JWTSecretKey    string        `yaml:"jwt_secret_key"`
	SeedOnStart     bool          `yaml:"seed_on_start"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	DB   dbpkg.Options            `yaml:"db"`
	Otel observability.OtelConfig `yaml:"otel"`
}

func defaultConfig() Config {
	return Config{
		HTTPAddr:        ":8080",
		MetricsAddr:     ":9090",
		ShutdownTimeout: 10 * time.Second,
		DB: dbpkg.Options{
			Driver:     dbpkg.DriverSQLite,
			SQLitePath: "restaurants.db",
			Postgres: dbpkg.PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				User:    "postgres",
				Name:    "restaurants",
				SSLMode: "disable",
			},
		},
		Otel: observability.OtelConfig{
			ServiceName: "restaurant-service",
			SampleRatio: 1,
		},
	}
}

// LoadConfig starts from defaults, applies CONFIG_FILE when set, then lets environment
// variables override individual keys.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()
	if path := envutil.String("CONFIG_FILE", "", log); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %q: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg.HTTPAddr = envutil.String("HTTP_ADDR", cfg.HTTPAddr, log)
	cfg.MetricsAddr = envutil.String("METRICS_ADDR", cfg.MetricsAddr, log)
	if origins := envutil.String("CORS_ORIGINS", "", log); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	cfg.JWTSecretKey = envutil.String("JWT_SECRET_KEY", cfg.JWTSecretKey, log)
	cfg.SeedOnStart = envutil.Bool("SEED_ON_START", cfg.SeedOnStart, log)
	cfg.ShutdownTimeout = envutil.Duration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout, log)

	cfg.DB.Driver = envutil.String("DB_DRIVER", cfg.DB.Driver, log)
	cfg.DB.SQLitePath = envutil.String("SQLITE_PATH", cfg.DB.SQLitePath, log)
	cfg.DB.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.DB.Postgres.Host, log)
	cfg.DB.Postgres.Port = envutil.Int("POSTGRES_PORT", cfg.DB.Postgres.Port, log)
	cfg.DB.Postgres.User = envutil.String("POSTGRES_USER", cfg.DB.Postgres.User, log)
	cfg.DB.Postgres.Password = envutil.String("POSTGRES_PASSWORD", cfg.DB.Postgres.Password, log)
	cfg.DB.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.DB.Postgres.Name, log)
	cfg.DB.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.DB.Postgres.SSLMode, log)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled, log)
	cfg.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.Otel.ServiceName, log)
	cfg.Otel.Environment = envutil.String("OTEL_ENVIRONMENT", cfg.Otel.Environment, log)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint, log)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure, log)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio, log)

	if strings.EqualFold(strings.TrimSpace(cfg.MetricsAddr), metricsDisabled) {
		cfg.MetricsAddr = ""
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
