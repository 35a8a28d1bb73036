// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/models"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

// ─────────────────────────────────────────────
// Fake: store.AccountRepository
// ─────────────────────────────────────────────

// fakeAccountRepository is an in-memory repository enforcing username
// uniqueness the way the database constraint does.
type fakeAccountRepository struct {
	mu       sync.Mutex
	nextID   int64
	byID     map[int64]models.Account
	username map[string]int64
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		byID:     make(map[int64]models.Account),
		username: make(map[string]int64),
	}
}

func (r *fakeAccountRepository) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.username[account.Username]; ok {
		return models.Account{}, store.ErrUsernameAlreadyExists
	}
	r.nextID++
	account.AccountID = r.nextID
	account.CreatedAt = time.Now().UTC()
	r.byID[account.AccountID] = account
	r.username[account.Username] = account.AccountID

	return account, nil
}

func (r *fakeAccountRepository) FindAccountByUsername(_ context.Context, username string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.username[username]
	if !ok {
		return models.Account{}, store.ErrNoAccountWasFound
	}
	return r.byID[id], nil
}

func (r *fakeAccountRepository) FindAccountByID(_ context.Context, accountID int64) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[accountID]
	if !ok {
		return models.Account{}, store.ErrNoAccountWasFound
	}
	return account, nil
}

func (r *fakeAccountRepository) TouchLastActive(_ context.Context, at time.Time, accountIDs ...int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, id := range accountIDs {
		account, ok := r.byID[id]
		if !ok {
			continue
		}
		t := at
		account.LastActiveAt = &t
		r.byID[id] = account
		n++
	}
	return n, nil
}

func (r *fakeAccountRepository) delete(accountID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.username, r.byID[accountID].Username)
	delete(r.byID, accountID)
}

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()

	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func newTestAccountService(t *testing.T, repo store.AccountRepository) AccountService {
	t.Helper()
	return NewAccountService(repo, newTestHasher(t), nil, logger.Nop())
}

func mustRegister(t *testing.T, svc AccountService, username, password string) models.Account {
	t.Helper()

	account, err := svc.Register(context.Background(), models.Credentials{
		Username: username,
		Password: password,
		Email:    username + "@x.com",
	})
	require.NoError(t, err)
	return account
}

func credentials(username, password, email string) models.Credentials {
	return models.Credentials{Username: username, Password: password, Email: email}
}
