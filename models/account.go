// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the request body accepted by the registration and login
// endpoints. Password carries the plain secret and must never be logged or
// persisted; it is consumed by the password hasher and discarded.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// Account represents one registered user.
//
// PasswordHash holds the salted one-way derivation of the credential secret.
// It is excluded from JSON and is cleared by [Account.Scrubbed] before an
// account leaves the service layer.
type Account struct {
	// AccountID is the server-assigned identifier, embedded as the subject of
	// signed-claim tokens.
	AccountID int64 `json:"id"`

	// Username is unique across all accounts and immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the credential secret.
	PasswordHash string `json:"-"`

	// Email is a contact address. No uniqueness is enforced.
	Email string `json:"email"`

	// CreatedAt is the time the row was inserted.
	CreatedAt time.Time `json:"created_at"`

	// LastActiveAt is updated from authenticated activity. Nil until the
	// account has made at least one authenticated request.
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
}

// Scrubbed returns a copy of the account without its password hash.
func (a Account) Scrubbed() Account {
	a.PasswordHash = ""
	return a
}

// TableName returns the name of the database table associated with Account.
func (a Account) TableName() string {
	return "accounts"
}
