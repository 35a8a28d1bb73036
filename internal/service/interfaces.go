// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// PasswordHasher derives and checks one-way password hashes.
type PasswordHasher interface {
	// Hash returns the salted hash of password.
	Hash(password string) (string, error)

	// Compare reports a nil error when password matches hash. The comparison
	// runs in constant time with respect to the hash contents.
	Compare(hash, password string) error

	// CompareDummy performs a comparison against a fixed hash and discards
	// the outcome. It keeps the unknown-username path as slow as a real
	// mismatch.
	CompareDummy(password string)
}

// AccountService registers accounts and verifies their credentials.
type AccountService interface {
	Register(ctx context.Context, creds models.Credentials) (models.Account, error)
	VerifyCredentials(ctx context.Context, creds models.Credentials) (models.Account, error)
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (models.Account, error)
}

// IdentityIssuer issues identity proofs for verified accounts and resolves
// presented proofs back to accounts.
type IdentityIssuer interface {
	Issue(ctx context.Context, account models.Account) (models.Token, error)
	Resolve(ctx context.Context, proof string) (models.Account, error)

	// Mode reports the configured variant: "jwt" or "opaque".
	Mode() string
}

// ActivityService collects authenticated activity and periodically writes
// it to storage.
type ActivityService interface {
	Record(accountID int64)
	Flush(ctx context.Context) (int64, error)
	Pending() int
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
