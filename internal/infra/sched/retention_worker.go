package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
)

// RetentionWorker periodically deletes sessions idle past the retention
// window. Conversations are anonymous; idle data has no reason to stay.
type RetentionWorker struct {
	interval time.Duration
	idle     time.Duration
	sessions repository.SessionRepository
	log      *zerolog.Logger
}

func NewRetentionWorker(interval, idle time.Duration, sessions repository.SessionRepository, logger *zerolog.Logger) *RetentionWorker {
	wlog := logger.With().Str("component", "RetentionWorker").Logger()
	return &RetentionWorker{
		interval: interval,
		idle:     idle,
		sessions: sessions,
		log:      &wlog,
	}
}

func (w *RetentionWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Dur("idle", w.idle).Msg("Starting retention worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping retention worker")
			return ctx.Err()
		case <-ticker.C:
			cutoff := time.Now().Add(-w.idle)
			n, err := w.sessions.DeleteIdleBefore(ctx, cutoff)
			if err != nil {
				w.log.Error().Err(err).Msg("retention sweep error")
				continue
			}
			if n > 0 {
				w.log.Info().Int64("count", n).Msg("idle sessions removed")
			}
		}
	}
}
