// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/store"
)

type Services struct {
	AccountService  AccountService
	IdentityIssuer  IdentityIssuer
	ActivityService ActivityService
	AppInfoService  AppInfoService
}

// NewServices wires every service on top of storages. m may be nil.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) (*Services, error) {
	hasher, err := NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	accountService := NewAccountService(storages.AccountRepository, hasher, m, log)

	issuer, err := NewIdentityIssuer(cfg.App, accountService, storages.SessionStorage, m)
	if err != nil {
		return nil, fmt.Errorf("error creating identity issuer: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AccountService:  accountService,
		IdentityIssuer:  issuer,
		ActivityService: NewActivityService(storages.AccountRepository, log),
		AppInfoService:  appInfoService,
	}, nil
}

// isExpectedFailure reports whether err is a caller-caused outcome rather
// than a fault of the service or its storage.
func isExpectedFailure(err error) bool {
	return errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrInvalidDataProvided) ||
		errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrAccountNotFound)
}
