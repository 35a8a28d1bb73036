// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-account-service/internal/logger"

// Storages groups every storage the service layer depends on.
type Storages struct {
	AccountRepository AccountRepository
	SessionStorage    SessionStorage
}

// NewStorages builds the account repository on top of db and a fresh
// in-memory session storage.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		SessionStorage:    NewMemorySessionStorage(),
	}
}
