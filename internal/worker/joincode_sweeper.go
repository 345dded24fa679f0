package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/classforge/classroom-backend/internal/repository"
)

// sweepInterval is how often expired join codes are purged.
const sweepInterval = 15 * time.Minute

// JoinCodeSweeper periodically deletes expired class join codes.
type JoinCodeSweeper struct {
	joinCodeRepo *repository.JoinCodeRepository
	log          zerolog.Logger
}

// NewJoinCodeSweeper creates a new JoinCodeSweeper.
func NewJoinCodeSweeper(joinCodeRepo *repository.JoinCodeRepository, log zerolog.Logger) *JoinCodeSweeper {
	return &JoinCodeSweeper{
		joinCodeRepo: joinCodeRepo,
		log:          log.With().Str("component", "joincode_sweeper").Logger(),
	}
}

// Start begins the sweep loop. Call in a goroutine.
func (w *JoinCodeSweeper) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	// One sweep on startup so restarts don't leave stale codes around.
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *JoinCodeSweeper) sweep(ctx context.Context) {
	deleted, err := w.joinCodeRepo.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("Sweep failed")
		}
		return
	}
	if deleted > 0 {
		w.log.Info().Int64("deleted", deleted).Msg("Expired join codes removed")
	}
}
