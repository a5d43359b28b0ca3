package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	return client, mr
}

func TestSetGet(t *testing.T) {
	client, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "greeting", "hello", time.Minute))

	val, err := client.Get(ctx, "greeting")
	assert.NoError(t, err)
	assert.Equal(t, "hello", val)
}

func TestGet_MissingKey(t *testing.T) {
	client, _ := setupTestCache(t)

	_, err := client.Get(context.Background(), "does-not-exist")
	assert.Error(t, err)
}

func TestExpiration(t *testing.T) {
	client, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "ephemeral", "x", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "ephemeral")
	assert.Error(t, err)
}

func TestDeletePattern(t *testing.T) {
	client, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "feed:1:7", "a", time.Minute))
	require.NoError(t, client.Set(ctx, "feed:1:30", "b", time.Minute))
	require.NoError(t, client.Set(ctx, "other:1", "c", time.Minute))

	require.NoError(t, client.DeletePattern(ctx, "feed:*"))

	exists, err := client.Exists(ctx, "feed:1:7")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "other:1")
	require.NoError(t, err)
	assert.True(t, exists)
}
