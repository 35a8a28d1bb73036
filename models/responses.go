// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginResponse is returned by a successful login. The same token is also
// sent in the Authorization response header.
type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ErrorResponse is the body of every non-2xx response. Message is always a
// generic, caller-safe description; internal error text is never exposed.
type ErrorResponse struct {
	Error string `json:"error"`
}
