package remote

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStore(NewRedisClient("redis://"+mr.Addr()), ttl)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t, 0)

	value, found, err := store.Get(context.Background(), "session:missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestRedisStore_PutThenGet(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session:a", []byte(`{"id":"a"}`)))

	value, found, err := store.Get(ctx, "session:a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"id":"a"}`, string(value))

	// Zero ttl stores without expiry.
	assert.Equal(t, time.Duration(0), mr.TTL("session:a"))
}

func TestRedisStore_PutAppliesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "quickstart:q", []byte("v")))
	assert.Equal(t, time.Hour, mr.TTL("quickstart:q"))

	mr.FastForward(2 * time.Hour)

	_, found, err := store.Get(ctx, "quickstart:q")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_PlainAddress(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(NewRedisClient(mr.Addr()), 0)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Ping(context.Background()))
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "session:a", []byte("v")))

	mr.Close()

	_, found, err := store.Get(ctx, "session:a")
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "redis get session:a")

	err = store.Put(ctx, "session:b", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set session:b")

	assert.Error(t, store.Ping(ctx))
}
