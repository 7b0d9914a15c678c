// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// bcrypt accepts costs in [4, 31].
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	return cfg.Server.validate()
}

func (a App) validate() error {
	if a.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	}
	if a.AccessTokenDuration <= 0 || a.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if (a.PrivateKeyPath == "") != (a.PublicKeyPath == "") {
		return fmt.Errorf("%w: both RSA key paths must be set or both left empty", ErrInvalidAppConfigs)
	}
	if a.PasswordHashCost < minPasswordHashCost || a.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, a.PasswordHashCost)
	}

	return nil
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch s.DB.Dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidStorageConfigs, s.DB.Dialect)
	}

	switch s.DB.Engine {
	case EngineSQL:
	case EngineGORM:
		if s.DB.Dialect != DialectPostgres {
			return fmt.Errorf("%w: gorm engine requires postgres", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidStorageConfigs, s.DB.Engine)
	}

	if s.Cache.Address != "" && s.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache TTL must be positive", ErrInvalidStorageConfigs)
	}

	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	if s.LoginRateLimit > 0 && s.LoginRateBurst < 1 {
		return fmt.Errorf("%w: login rate burst must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
