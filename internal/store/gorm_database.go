package store

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/migrations"
)

// gormConfig translates driver errors into gorm.ErrDuplicatedKey and skips
// the implicit transaction gorm wraps around single writes.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}

// NewConnectGorm opens a gorm session over postgres, pings it and applies
// the postgres migrations.
func NewConnectGorm(ctx context.Context, cfg config.DB, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig())
	if err != nil {
		log.Err(err).Str("func", "NewConnectGorm").Msg("error opening gorm session")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql handle from gorm: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectGorm").Msg("error connecting database (ping)")
		_ = sqlDB.Close()
		return nil, err
	}

	if err = migrations.Migrate(sqlDB, config.DialectPostgres); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectGorm").Msg("connected to database successfully")

	return db, nil
}
