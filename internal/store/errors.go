// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert violates the unique
	// constraint on accounts.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoAccountWasFound is returned when a lookup matches no account.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrSessionNotFound is returned when an opaque token is not present in
	// the session storage.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionAlreadyExists is returned when a token is saved twice.
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// ErrStorage is the umbrella for backend faults that are not one of the
// expected outcomes above. Every low-level error below wraps it, so callers
// can match the whole class with errors.Is(err, ErrStorage).
var ErrStorage = errors.New("storage error")

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", ErrStorage)

	// ErrExecutingQuery is returned when a SELECT or INSERT ... RETURNING
	// fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", ErrStorage)

	// ErrScanningRow is returned when a result row cannot be scanned into
	// a model.
	ErrScanningRow = fmt.Errorf("%w: error scanning row", ErrStorage)

	// ErrExecutingStatement is returned when an UPDATE fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", ErrStorage)

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// pgx nor sqlite3.
	ErrUnsupportedDriver = fmt.Errorf("%w: unsupported database driver", ErrStorage)
)
