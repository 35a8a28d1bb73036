// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

// jwtIssuer issues self-contained HS256 tokens. It keeps no server-side
// state: every Resolve verifies the signature, issuer and expiry, then
// re-reads the account named by the subject.
type jwtIssuer struct {
	accounts AccountService

	// signKey is the HMAC secret used to sign and verify tokens.
	signKey []byte

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration

	now     func() time.Time
	metrics *metrics.Metrics
}

// NewJWTIssuer constructs the signed-claim [IdentityIssuer]. signKey must be
// at least [config.MinTokenSignKeyLength] bytes long.
func NewJWTIssuer(accounts AccountService, signKey []byte, issuer string, duration time.Duration, m *metrics.Metrics) (IdentityIssuer, error) {
	if len(signKey) < config.MinTokenSignKeyLength {
		return nil, fmt.Errorf("%w: need at least %d bytes", ErrTokenSignKeyTooShort, config.MinTokenSignKeyLength)
	}
	if issuer == "" || duration <= 0 {
		return nil, ErrInvalidIssuerSettings
	}

	key := make([]byte, len(signKey))
	copy(key, signKey)

	return &jwtIssuer{
		accounts: accounts,
		signKey:  key,
		issuer:   issuer,
		duration: duration,
		now:      time.Now,
		metrics:  m,
	}, nil
}

func (i *jwtIssuer) Mode() string {
	return config.TokenModeJWT
}

// Issue signs a token for account that expires after the configured
// duration.
func (i *jwtIssuer) Issue(ctx context.Context, account models.Account) (models.Token, error) {
	if account.AccountID <= 0 {
		return models.Token{}, fmt.Errorf("%w: account has no id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(i.issuer, account.AccountID, i.now(), i.duration, i.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", account.AccountID).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	token.Username = account.Username

	return token, nil
}

// Resolve verifies proof and returns the account it was issued for.
//
// Returns ErrTokenIsExpired for a correctly signed token past its expiry,
// ErrInvalidToken for any other verification failure and ErrAccountNotFound
// when the account no longer exists.
func (i *jwtIssuer) Resolve(ctx context.Context, proof string) (account models.Account, err error) {
	defer func() { i.metrics.RecordTokenResolution(resolutionResult(err)) }()

	accountID, err := utils.ValidateAndParseJWTToken(proof, i.signKey, i.issuer, i.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Account{}, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Account{}, ErrInvalidToken
	}

	return i.accounts.GetAccount(ctx, accountID)
}
