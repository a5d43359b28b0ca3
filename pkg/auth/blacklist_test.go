package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/pkg/cache"
)

func newTestBlacklist(t *testing.T) (*TokenBlacklist, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	c := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return NewTokenBlacklist(c), mr
}

func TestTokenBlacklist(t *testing.T) {
	bl, _ := newTestBlacklist(t)
	ctx := context.Background()

	token := "some.jwt.token"

	blacklisted, err := bl.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, bl.Add(ctx, token, time.Hour))

	blacklisted, err = bl.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTokenBlacklistExpiry(t *testing.T) {
	bl, mr := newTestBlacklist(t)
	ctx := context.Background()

	token := "short.lived.token"
	require.NoError(t, bl.Add(ctx, token, time.Minute))

	mr.FastForward(2 * time.Minute)

	blacklisted, err := bl.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
