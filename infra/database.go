package infra

import (
	"errors"
	"time"

	"github.com/amirasaad/banktransfer/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDatabaseURLNotSet is returned when no DATABASE_URL is configured.
var ErrDatabaseURLNotSet = errors.New("DATABASE_URL is not set")

// NewDBConnection opens the Postgres connection pool. SQL statements are
// logged in development only.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, ErrDatabaseURLNotSet
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode(appEnv)),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	maxConns := cnf.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 25
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

func logMode(appEnv string) logger.LogLevel {
	if appEnv == "development" {
		return logger.Info
	}
	return logger.Silent
}
