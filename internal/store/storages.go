package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
)

// Storages aggregates the repositories and the connections behind them.
type Storages struct {
	CustomerRepository CustomerRepository

	db    *sql.DB
	cache *redis.Client
}

// NewStorages connects the configured engine, applies migrations and,
// when a cache address is configured, wraps the repository with redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch cfg.DB.Engine {
	case config.EngineSQL:
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.db = db.DB
		storages.CustomerRepository = NewCustomerRepository(db, log)
	case config.EngineGORM:
		gdb, err := NewConnectGorm(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		storages.db = sqlDB
		storages.CustomerRepository = NewGormCustomerRepository(gdb, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, cfg.DB.Engine)
	}

	if cfg.Cache.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Cache, log)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
		storages.cache = client
		storages.CustomerRepository = NewCachedCustomerRepository(storages.CustomerRepository, client, cfg.Cache.TTL, log)
	}

	log.Info().Str("engine", cfg.DB.Engine).Bool("cache", storages.cache != nil).Msg("storages are ready")
	return storages, nil
}

// Ping checks the database and, if configured, the cache.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("database is not connected")
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("cache is unreachable: %w", err)
		}
	}

	return nil
}

// Close releases every connection.
func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
