// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
)

// finalFlushTimeout bounds the flush performed after cancellation.
const finalFlushTimeout = 5 * time.Second

// activityFlusher periodically writes recorded account activity to storage.
type activityFlusher struct {
	activity service.ActivityService
	interval time.Duration
	logger   *logger.Logger
}

func newActivityFlusher(activity service.ActivityService, interval time.Duration, log *logger.Logger) *activityFlusher {
	if interval <= 0 {
		interval = config.DefaultActivityFlushInterval
	}

	return &activityFlusher{
		activity: activity,
		interval: interval,
		logger:   log,
	}
}

func (f *activityFlusher) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.logger.Info().Dur("interval", f.interval).Msg("activity flusher started")

	for {
		select {
		case <-ctx.Done():
			// ctx is already cancelled; the last flush gets its own deadline
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
			f.flush(flushCtx)
			cancel()

			f.logger.Info().Msg("activity flusher stopped")
			return
		case <-ticker.C:
			f.flush(ctx)
		}
	}
}

func (f *activityFlusher) flush(ctx context.Context) {
	if f.activity.Pending() == 0 {
		return
	}

	n, err := f.activity.Flush(ctx)
	if err != nil {
		f.logger.Err(err).Int("pending", f.activity.Pending()).Msg("error flushing account activity")
		return
	}

	f.logger.Debug().Int64("updated", n).Msg("account activity flushed")
}
