package database

import (
	"fmt"
	"time"

	"publiflow-backend/internal/database/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
	// ConnectTimeout bounds the total time spent retrying the initial connection
	ConnectTimeout time.Duration
}

// Models lists every table owned by the service in migration order
func Models() []interface{} {
	return []interface{}{
		&models.Profile{},
		&models.Partner{},
		&models.Deal{},
		&models.Deliverable{},
		&models.Idea{},
		&models.Expense{},
		&models.CalendarConnection{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
// The first ping is retried with exponential backoff so the API can start before the database.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 30 * time.Second
	}

	// Open DB
	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(opts.LogLevel),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		return sqlDB.Ping()
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = opts.ConnectTimeout
	notify := func(err error, wait time.Duration) {
		logrus.WithError(err).Warnf("Database not ready, retrying in %s", wait)
	}
	if err := backoff.RetryNotify(connect, policy, notify); err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		// One profile per identity-provider user
		if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_user_unique ON profiles (user_id)`).Error; err != nil {
			return nil, fmt.Errorf("profile index: %w", err)
		}
		if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_calendar_connections_user_unique ON calendar_connections (user_id)`).Error; err != nil {
			return nil, fmt.Errorf("calendar connection index: %w", err)
		}
	}

	return db, nil
}
