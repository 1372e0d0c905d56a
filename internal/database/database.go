package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"shareit/internal/domain"
)

type options struct {
	log             *zerolog.Logger
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
}

type Option func(*options)

// gormWriter lifts gorm's Printf output to warn level; gorm only prints
// slow queries and errors at the configured LogLevel.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Msgf(format, args...)
}

// WithLogger routes gorm's slow query and error log through l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = &l }
}

func WithPool(maxOpen, maxIdle int, lifetime time.Duration) Option {
	return func(o *options) {
		o.maxOpenConns = maxOpen
		o.maxIdleConns = maxIdle
		o.connMaxLifetime = lifetime
	}
}

// IsPostgres reports whether dsn is a postgres URL or keyword/value string.
// Anything else is treated as a sqlite path.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func Connect(dsn string, opts ...Option) (*gorm.DB, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &gorm.Config{Logger: logger.Discard}
	if o.log != nil {
		cfg.Logger = logger.New(gormWriter{log: o.log.With().Str("component", "gorm").Logger()}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	var dialector gorm.Dialector
	if IsPostgres(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		})
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	// every new connection to :memory: is a fresh empty database
	if strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	} else if o.maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(o.maxOpenConns)
	}
	if o.maxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(o.maxIdleConns)
	}
	if o.connMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(o.connMaxLifetime)
	}

	if o.log != nil {
		driver := "sqlite"
		if IsPostgres(dsn) {
			driver = "postgres"
		}
		o.log.Info().Str("driver", driver).Msg("database connected")
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
