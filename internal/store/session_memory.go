// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memorySessionStorage keeps opaque tokens for the lifetime of the process.
// Entries never expire and are never removed.
type memorySessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemorySessionStorage returns an empty in-process [SessionStorage].
func NewMemorySessionStorage() SessionStorage {
	return &memorySessionStorage{
		sessions: make(map[string]string),
	}
}

func (s *memorySessionStorage) Save(_ context.Context, token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; ok {
		return ErrSessionAlreadyExists
	}
	s.sessions[token] = username

	return nil
}

func (s *memorySessionStorage) Find(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}

	return username, nil
}
