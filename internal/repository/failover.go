package repository

import (
	"context"
	"sync/atomic"
	"time"

	"darshan/internal/domain"
	"darshan/internal/models"

	"github.com/rs/zerolog"
)

// FailoverStateRepository prefers the primary backend and degrades to the
// fallback after a failure, retrying the primary after a cooldown.
type FailoverStateRepository struct {
	primary  domain.StateRepository
	fallback domain.StateRepository
	logger   *zerolog.Logger
	isDown   atomic.Bool
	// Unix nanos of the last failed probe, read concurrently with markDown.
	lastCheck atomic.Int64
}

func NewFailoverStateRepository(primary, fallback domain.StateRepository, logger *zerolog.Logger) *FailoverStateRepository {
	return &FailoverStateRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverStateRepository) GetState(ctx context.Context, key string) (*models.ActionState, error) {
	if !r.isDown.Load() {
		state, err := r.primary.GetState(ctx, key)
		if err == nil {
			return state, nil
		}
		r.markDown(err)
	}

	// Probe the primary again after a minute.
	if r.isDown.Load() && time.Since(time.Unix(0, r.lastCheck.Load())) > time.Minute {
		state, err := r.primary.GetState(ctx, key)
		if err == nil {
			r.isDown.Store(false)
			return state, nil
		}
		r.lastCheck.Store(time.Now().UnixNano())
	}

	return r.fallback.GetState(ctx, key)
}

func (r *FailoverStateRepository) SetState(ctx context.Context, state *models.ActionState) error {
	if !r.isDown.Load() {
		err := r.primary.SetState(ctx, state)
		if err == nil {
			return nil
		}
		r.markDown(err)
	}
	return r.fallback.SetState(ctx, state)
}

func (r *FailoverStateRepository) ClearState(ctx context.Context, key string) error {
	if !r.isDown.Load() {
		err := r.primary.ClearState(ctx, key)
		if err == nil {
			return nil
		}
		r.markDown(err)
	}
	return r.fallback.ClearState(ctx, key)
}

func (r *FailoverStateRepository) markDown(err error) {
	r.logger.Error().Err(err).Msg("primary state repository failed, falling back to memory")
	r.isDown.Store(true)
	r.lastCheck.Store(time.Now().UnixNano())
}
