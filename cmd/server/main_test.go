package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/service"
)

func sqliteConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{
			TokenIssuer:          "self",
			AccessTokenDuration:  8 * time.Hour,
			RefreshTokenDuration: 10 * time.Minute,
			PasswordHashCost:     4,
		},
		Storage: config.Storage{
			DB: config.DB{
				DSN:     "file:" + filepath.Join(t.TempDir(), "customers.db"),
				Dialect: config.DialectSQLite,
				Engine:  config.EngineSQL,
			},
		},
	}
}

func TestRun_StorageError(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Storage.DB.Dialect = "mysql"

	err := run(context.Background(), cfg, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating storages")
}

func TestRun_ServicesErrorIsReturned(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.App.PrivateKeyPath = filepath.Join(t.TempDir(), "missing.pem")
	cfg.App.PublicKeyPath = filepath.Join(t.TempDir(), "missing.pub.pem")

	err := run(context.Background(), cfg, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidKeyMaterial)
	assert.Contains(t, err.Error(), "error creating services")
}

func TestRun_HandlersErrorIsReturned(t *testing.T) {
	cfg := sqliteConfig(t)

	err := run(context.Background(), cfg, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating handlers")
}
