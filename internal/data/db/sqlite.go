package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// OpenSQLite opens a pure-Go SQLite database at path (":memory:" or a file path).
// The pool is pinned to a single connection so writers serialize and in-memory
// databases are not split across connections.
func OpenSQLite(path string, logg *logger.Logger) (*gorm.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = ":memory:"
	}
	dsn := path
	if !strings.Contains(dsn, "?") && !strings.HasPrefix(dsn, "file:") {
		dsn += "?_pragma=foreign_keys(0)&_pragma=busy_timeout(5000)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite %q: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if logg != nil {
		logg.With("service", "SQLite").Info("Opened SQLite", "path", path)
	}
	return db, nil
}

type Options struct {
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// Open connects using the configured driver and migrates the schema.
func Open(opts Options, logg *logger.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		db, err = OpenSQLite(opts.SQLitePath, logg)
	case DriverPostgres:
		var svc *PostgresService
		svc, err = NewPostgresService(opts.Postgres, logg)
		if svc != nil {
			db = svc.DB()
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := AutoMigrateAll(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
