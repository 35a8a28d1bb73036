// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts.
type AccountRepository interface {
	// CreateAccount inserts a new account and returns it with AccountID and
	// CreatedAt populated. A duplicate username yields ErrUsernameAlreadyExists.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByUsername returns the account with the given username or
	// ErrNoAccountWasFound.
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)

	// FindAccountByID returns the account with the given id or
	// ErrNoAccountWasFound.
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)

	// TouchLastActive sets last_active_at to at for every listed account and
	// returns the number of rows updated.
	TouchLastActive(ctx context.Context, at time.Time, accountIDs ...int64) (int64, error)
}

// SessionStorage maps opaque tokens to the username they were issued for.
// Implementations must be safe for concurrent use.
type SessionStorage interface {
	Save(ctx context.Context, token, username string) error
	Find(ctx context.Context, token string) (string, error)
}
