// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the account service.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// commands from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// ServerAdapter defines communication with the account service.
type ServerAdapter interface {
	// Register creates an account and returns it as stored by the server.
	Register(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Login verifies creds and returns the issued identity proof.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Profile returns the account identified by token.
	Profile(ctx context.Context, token string) (models.Account, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
