package auth

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/sannty/salescrm/pkg/cache"
)

// TokenBlacklist tracks revoked JWTs in redis until they would have expired
// on their own. Tokens are stored hashed, so the cache never holds a usable
// credential.
type TokenBlacklist struct {
	cache *cache.Client
}

// NewTokenBlacklist creates a new token blacklist
func NewTokenBlacklist(cache *cache.Client) *TokenBlacklist {
	return &TokenBlacklist{cache: cache}
}

// Add revokes a token for the given duration, typically the token's
// remaining lifetime.
func (b *TokenBlacklist) Add(ctx context.Context, token string, expiration time.Duration) error {
	return b.cache.Set(ctx, blacklistKey(token), "revoked", expiration)
}

// IsBlacklisted reports whether a token has been revoked.
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	return b.cache.Exists(ctx, blacklistKey(token))
}

func blacklistKey(token string) string {
	return fmt.Sprintf("salescrm:revoked:%x", sha256.Sum256([]byte(token)))
}
