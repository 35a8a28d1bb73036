// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
)

// activityService accumulates the ids of accounts that made authenticated
// requests and writes them in one UPDATE per flush. last_active_at
// therefore has the resolution of the flush interval.
type activityService struct {
	mu      sync.Mutex
	pending map[int64]struct{}

	accountRepository store.AccountRepository
	now               func() time.Time
	logger            *logger.Logger
}

func NewActivityService(accountRepository store.AccountRepository, log *logger.Logger) ActivityService {
	return &activityService{
		pending:           make(map[int64]struct{}),
		accountRepository: accountRepository,
		now:               time.Now,
		logger:            log,
	}
}

// Record marks accountID as active. It never blocks on storage.
func (s *activityService) Record(accountID int64) {
	if accountID <= 0 {
		return
	}

	s.mu.Lock()
	s.pending[accountID] = struct{}{}
	s.mu.Unlock()
}

// Flush writes every pending account to storage. On failure the ids are
// put back so the next flush retries them.
func (s *activityService) Flush(ctx context.Context) (int64, error) {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[int64]struct{}, len(batch))
	s.mu.Unlock()

	if len(batch) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(batch))
	for id := range batch {
		ids = append(ids, id)
	}

	updated, err := s.accountRepository.TouchLastActive(ctx, s.now().UTC(), ids...)
	if err != nil {
		s.mu.Lock()
		for _, id := range ids {
			s.pending[id] = struct{}{}
		}
		s.mu.Unlock()

		s.logger.Err(err).Int("accounts", len(ids)).Msg("flushing account activity failed")
		return 0, fmt.Errorf("flushing account activity failed: %w", err)
	}

	s.logger.Debug().Int("accounts", len(ids)).Int64("updated", updated).Msg("account activity flushed")

	return updated, nil
}

// Pending returns the number of accounts waiting for the next flush.
func (s *activityService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}
