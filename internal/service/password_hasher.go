// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-account-service/internal/validators"
)

// dummyPassword only seeds the hash used by CompareDummy; it never matches
// a stored credential.
const dummyPassword = "account-service-timing-equaliser"

type bcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewBcryptHasher returns a [PasswordHasher] using bcrypt with cost.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHashCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > validators.MaxPasswordBytes {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrPasswordTooLong)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	// bcrypt silently ignores bytes past the limit; refuse instead of
	// matching on a prefix
	if len(password) > validators.MaxPasswordBytes {
		h.CompareDummy(password[:validators.MaxPasswordBytes])
		return bcrypt.ErrMismatchedHashAndPassword
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (h *bcryptHasher) CompareDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(dummyPassword), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
