package repository

import (
	"context"
	"sync"

	"darshan/internal/models"
)

// MemoryStateRepository holds coordinator state in process memory. It is
// the default backend; pending intents do not survive a restart with it.
type MemoryStateRepository struct {
	states sync.Map
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{}
}

func (r *MemoryStateRepository) GetState(ctx context.Context, key string) (*models.ActionState, error) {
	val, ok := r.states.Load(key)
	if !ok {
		return nil, nil
	}
	return val.(*models.ActionState), nil
}

func (r *MemoryStateRepository) SetState(ctx context.Context, state *models.ActionState) error {
	r.states.Store(state.Key, state)
	return nil
}

func (r *MemoryStateRepository) ClearState(ctx context.Context, key string) error {
	r.states.Delete(key)
	return nil
}
