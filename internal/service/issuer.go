// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/store"
)

// NewIdentityIssuer returns the issuer selected by cfg.TokenMode.
func NewIdentityIssuer(cfg config.App, accounts AccountService, sessions store.SessionStorage, m *metrics.Metrics) (IdentityIssuer, error) {
	switch cfg.TokenMode {
	case config.TokenModeJWT:
		return NewJWTIssuer(accounts, []byte(cfg.TokenSignKey), cfg.TokenIssuer, cfg.TokenDuration, m)
	case config.TokenModeOpaque:
		return NewOpaqueIssuer(accounts, sessions, m), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenMode, cfg.TokenMode)
	}
}

// resolutionResult maps a Resolve outcome to a metrics label.
func resolutionResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case isExpectedFailure(err):
		return metrics.ResultFailure
	default:
		return metrics.ResultError
	}
}
