// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

const (
	// opaqueTokenBytes is the entropy of an opaque token: 256 bits.
	opaqueTokenBytes = 32

	maxIssueAttempts = 3
)

// opaqueIssuer issues random tokens kept in the session storage for the
// lifetime of the process. Tokens never expire and are never revoked.
type opaqueIssuer struct {
	accounts AccountService
	sessions store.SessionStorage

	// random is swapped in tests.
	random  func(n int) (string, error)
	metrics *metrics.Metrics
}

// NewOpaqueIssuer constructs the opaque-token [IdentityIssuer].
func NewOpaqueIssuer(accounts AccountService, sessions store.SessionStorage, m *metrics.Metrics) IdentityIssuer {
	return &opaqueIssuer{
		accounts: accounts,
		sessions: sessions,
		random:   utils.RandomHex,
		metrics:  m,
	}
}

func (i *opaqueIssuer) Mode() string {
	return config.TokenModeOpaque
}

// Issue stores a fresh random token for account.Username.
func (i *opaqueIssuer) Issue(ctx context.Context, account models.Account) (models.Token, error) {
	if account.Username == "" {
		return models.Token{}, fmt.Errorf("%w: account has no username", ErrTokenCreationFailed)
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		token, err := i.random(opaqueTokenBytes)
		if err != nil {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}

		err = i.sessions.Save(ctx, token, account.Username)
		if errors.Is(err, store.ErrSessionAlreadyExists) {
			continue
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Int64("account_id", account.AccountID).Msg("saving session failed")
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}

		return models.Token{
			SignedString: token,
			AccountID:    account.AccountID,
			Username:     account.Username,
		}, nil
	}

	return models.Token{}, fmt.Errorf("%w: token collision", ErrTokenCreationFailed)
}

// Resolve looks proof up in the session storage and re-reads the account
// for the stored username. An unknown proof yields ErrUnauthorized.
func (i *opaqueIssuer) Resolve(ctx context.Context, proof string) (account models.Account, err error) {
	defer func() { i.metrics.RecordTokenResolution(resolutionResult(err)) }()

	if !isOpaqueToken(proof) {
		return models.Account{}, ErrUnauthorized
	}

	username, err := i.sessions.Find(ctx, proof)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Account{}, ErrUnauthorized
		}
		logger.FromContext(ctx).Err(err).Msg("session lookup failed")
		return models.Account{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return i.accounts.GetAccountByUsername(ctx, username)
}

func isOpaqueToken(proof string) bool {
	if len(proof) != hex.EncodedLen(opaqueTokenBytes) {
		return false
	}
	_, err := hex.DecodeString(proof)
	return err == nil
}
