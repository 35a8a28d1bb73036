// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/validators"
	"github.com/MKhiriev/go-account-service/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	// accountRepository is the data-access layer used to create and look up
	// accounts.
	accountRepository store.AccountRepository

	// hasher derives and checks password hashes.
	hasher PasswordHasher

	// validator checks credentials before any storage call.
	validator validators.Validator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAccountService constructs an AccountService. m may be nil.
func NewAccountService(accountRepository store.AccountRepository, hasher PasswordHasher, m *metrics.Metrics, log *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		validator:         validators.NewCredentialsValidator(),
		metrics:           m,
		logger:            log,
	}
}

// Register creates a new account.
//
// Username and email are trimmed; the password is taken verbatim. Every
// field must be present and well formed, otherwise ErrInvalidDataProvided is
// returned. A username collision, detected by the storage unique constraint,
// yields ErrDuplicateAccount. The returned account has no password hash.
func (s *accountService) Register(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	creds.Username = strings.TrimSpace(creds.Username)
	creds.Email = strings.TrimSpace(creds.Email)

	if err := s.validator.Validate(ctx, creds); err != nil {
		log.Warn().Err(err).Str("username", creds.Username).Msg("invalid registration data")
		s.metrics.RecordRegistration(metrics.ResultFailure)
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("password hashing failed")
		s.metrics.RecordRegistration(metrics.ResultError)
		return models.Account{}, err
	}

	account, err := s.accountRepository.CreateAccount(ctx, models.Account{
		Username:     creds.Username,
		PasswordHash: hash,
		Email:        creds.Email,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Str("username", creds.Username).Msg("username already taken")
			s.metrics.RecordRegistration(metrics.ResultFailure)
			return models.Account{}, ErrDuplicateAccount
		}
		log.Err(err).Str("username", creds.Username).Msg("account creation ended with error")
		s.metrics.RecordRegistration(metrics.ResultError)
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("account_id", account.AccountID).Str("username", account.Username).Msg("account registered")
	s.metrics.RecordRegistration(metrics.ResultSuccess)

	return account.Scrubbed(), nil
}

// VerifyCredentials authenticates an existing account.
//
// An unknown username and a wrong password both return
// ErrInvalidCredentials after a full bcrypt comparison, so neither the error
// nor the latency reveals which case occurred.
func (s *accountService) VerifyCredentials(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	creds.Username = strings.TrimSpace(creds.Username)

	if err := s.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		log.Warn().Err(err).Msg("invalid login data")
		s.metrics.RecordLogin(metrics.ResultFailure)
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := s.accountRepository.FindAccountByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			s.hasher.CompareDummy(creds.Password)
			log.Info().Str("username", creds.Username).Msg("login failed")
			s.metrics.RecordLogin(metrics.ResultFailure)
			return models.Account{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", creds.Username).Msg("account search by username failed")
		s.metrics.RecordLogin(metrics.ResultError)
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = s.hasher.Compare(account.PasswordHash, creds.Password); err != nil {
		log.Info().Str("username", creds.Username).Msg("login failed")
		s.metrics.RecordLogin(metrics.ResultFailure)
		return models.Account{}, ErrInvalidCredentials
	}

	s.metrics.RecordLogin(metrics.ResultSuccess)

	return account.Scrubbed(), nil
}

// GetAccount re-reads an account by id. A missing row yields
// ErrAccountNotFound.
func (s *accountService) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	if accountID <= 0 {
		return models.Account{}, ErrAccountNotFound
	}

	account, err := s.accountRepository.FindAccountByID(ctx, accountID)
	return s.scrubbedOrError(ctx, account, err)
}

// GetAccountByUsername re-reads an account by username. A missing row
// yields ErrAccountNotFound.
func (s *accountService) GetAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	if username == "" {
		return models.Account{}, ErrAccountNotFound
	}

	account, err := s.accountRepository.FindAccountByUsername(ctx, username)
	return s.scrubbedOrError(ctx, account, err)
}

func (s *accountService) scrubbedOrError(ctx context.Context, account models.Account, err error) (models.Account, error) {
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.Account{}, ErrAccountNotFound
		}
		logger.FromContext(ctx).Err(err).Msg("account lookup failed")
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	return account.Scrubbed(), nil
}
