// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided reports missing or malformed input.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateAccount reports a username collision on registration.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound reports that a valid identity proof points to an
	// account that no longer exists.
	ErrAccountNotFound = errors.New("account not found")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnknownTokenMode      = errors.New("unknown token mode")
	ErrTokenSignKeyTooShort  = errors.New("token sign key is too short")
	ErrInvalidIssuerSettings = errors.New("invalid token issuer settings")
	ErrInvalidHashCost       = errors.New("invalid password hash cost")
)

// ErrAuth is the umbrella for every authentication failure. The transport
// layer maps anything matching it to one undifferentiated response.
var ErrAuth = errors.New("authentication failed")

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)

	// ErrUnauthorized is returned when an opaque token is unknown.
	ErrUnauthorized = fmt.Errorf("%w: unauthorized", ErrAuth)

	// ErrInvalidToken is returned when a signed-claim token fails
	// verification.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrAuth)

	// ErrTokenIsExpired is returned when a signed-claim token is past its
	// expiry.
	ErrTokenIsExpired = fmt.Errorf("%w: token is expired", ErrAuth)
)
