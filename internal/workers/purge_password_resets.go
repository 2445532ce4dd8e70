package workers

import (
	"context"
	"time"

	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/rs/zerolog"
)

// passwordResetPurgeWorker periodically removes password resets that have
// outlived the validity window. Expired resets are already rejected on read;
// the purge only keeps the table from accumulating dead rows.
type passwordResetPurgeWorker struct {
	resets   service.PasswordResetService
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
}

func newPasswordResetPurgeWorker(resets service.PasswordResetService, interval time.Duration, log *logger.Logger) *passwordResetPurgeWorker {
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "password-reset-purge")
	})

	return &passwordResetPurgeWorker{
		resets:   resets,
		interval: interval,
		logger:   l,
		stop:     make(chan struct{}),
	}
}

// Run purges once immediately, then keeps purging on every interval tick
// until Stop is called. The ticker loop runs in its own goroutine.
func (w *passwordResetPurgeWorker) Run() {
	w.purge()

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.purge()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop halts the ticker loop. Safe to call only once.
func (w *passwordResetPurgeWorker) Stop() {
	close(w.stop)
}

func (w *passwordResetPurgeWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	purged, err := w.resets.PurgeExpired(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("purging expired password resets failed")
		return
	}

	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("expired password resets removed")
	}
}
