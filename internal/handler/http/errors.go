// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not the expected
	// JSON document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoAccountInContext means the auth middleware did not run before a
	// handler that requires it.
	ErrNoAccountInContext = errors.New("no account in request context")
)

// Messages sent to clients. They are deliberately generic.
const (
	msgInvalidJSON     = "invalid JSON was passed"
	msgInvalidData     = "invalid data provided"
	msgUnauthorized    = "unauthorized"
	msgAccountExists   = "account already exists"
	msgAccountNotFound = "account not found"
	msgNotFound        = "not found"
	msgInternalError   = "internal server error"
)
