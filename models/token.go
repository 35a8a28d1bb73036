// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an issued identity proof.
//
// For signed-claim tokens SignedString is the compact JWS form and ExpiresAt
// is the embedded expiry. For opaque tokens SignedString is the random
// hex string and ExpiresAt is nil because opaque tokens live as long as the
// process does.
type Token struct {
	// SignedString is the value the client presents in the Authorization
	// header. Excluded from JSON; handlers copy it into [LoginResponse].
	SignedString string `json:"-"`

	// AccountID identifies the account the token was issued for.
	AccountID int64 `json:"-"`

	// Username is the username the token was issued for.
	Username string `json:"-"`

	// ExpiresAt is the moment the token stops resolving, if it expires.
	ExpiresAt *time.Time `json:"-"`
}

// String returns the token value. It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
