package repository

import (
	"context"
	"testing"
	"time"

	"darshan/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStateRepository(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	repo := NewRedisStateRepository(client, time.Hour)
	ctx := context.Background()

	t.Run("SetAndGetState", func(t *testing.T) {
		state := &models.ActionState{
			Key:         models.ActionStateKey,
			Step:        models.StepAwaitingDetails,
			SubjectType: models.SubjectGuide,
			SubjectName: "Priya Singh",
		}

		require.NoError(t, repo.SetState(ctx, state))

		got, err := repo.GetState(ctx, models.ActionStateKey)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.StepAwaitingDetails, got.Step)
		assert.Equal(t, models.SubjectGuide, got.SubjectType)
	})

	t.Run("MissingStateIsNil", func(t *testing.T) {
		got, err := repo.GetState(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ClearState", func(t *testing.T) {
		state := &models.ActionState{Key: "gone", Step: models.StepAwaitingAuth}
		require.NoError(t, repo.SetState(ctx, state))
		require.NoError(t, repo.ClearState(ctx, "gone"))

		got, err := repo.GetState(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("StateExpires", func(t *testing.T) {
		short := NewRedisStateRepository(client, time.Second)
		state := &models.ActionState{Key: "ttl", Step: models.StepAwaitingAuth}
		require.NoError(t, short.SetState(ctx, state))

		s.FastForward(2 * time.Second)

		got, err := short.GetState(ctx, "ttl")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
