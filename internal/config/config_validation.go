// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the merged server configuration satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.TokenMode {
	case TokenModeJWT:
		if len(cfg.App.TokenSignKey) < MinTokenSignKeyLength {
			return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, MinTokenSignKeyLength)
		}
		if cfg.App.TokenDuration <= 0 {
			return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
		}
		if cfg.App.TokenIssuer == "" {
			return fmt.Errorf("%w: token issuer is empty", ErrInvalidAppConfigs)
		}
	case TokenModeOpaque:
	default:
		return fmt.Errorf("%w: unknown token mode %q", ErrInvalidAppConfigs, cfg.App.TokenMode)
	}

	if cfg.App.PasswordHashCost < MinPasswordHashCost || cfg.App.PasswordHashCost > MaxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d", ErrInvalidAppConfigs, MinPasswordHashCost, MaxPasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ActivityFlushInterval <= 0 {
		return fmt.Errorf("%w: activity flush interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
