package local

import (
	"context"
	"testing"

	"waypoint/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisKV(t *testing.T) *RedisKV {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisKV_GetMissingKey(t *testing.T) {
	kv := newRedisKV(t)

	_, err := kv.Get(context.Background(), "waypoint:missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisKV_SetGetDeleteKeys(t *testing.T) {
	kv := newRedisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "waypoint:profile", []byte(`{"name":"x"}`)))
	require.NoError(t, kv.Set(ctx, "waypoint:milestones", []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, "other:key", []byte(`1`)))

	v, err := kv.Get(ctx, "waypoint:profile")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"x"}`), v)

	keys, err := kv.Keys(ctx, "waypoint:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"waypoint:profile", "waypoint:milestones"}, keys)

	require.NoError(t, kv.Delete(ctx, keys...))
	_, err = kv.Get(ctx, "waypoint:profile")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_OverRedisBackend(t *testing.T) {
	kv := newRedisKV(t)
	s := NewStore(kv)
	ctx := context.Background()

	milestones, err := s.Milestones(ctx)
	require.NoError(t, err)
	assert.Len(t, milestones, 2)

	created, err := s.CreateMilestone(ctx, models.Milestone{Title: "Redis backed", Category: models.CategoryStudy, Order: 99})
	require.NoError(t, err)

	milestones, err = s.Milestones(ctx)
	require.NoError(t, err)
	require.Len(t, milestones, 3)
	assert.Equal(t, created.ID, milestones[2].ID)
}
