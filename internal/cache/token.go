package cache

import (
	"context"
	"time"
)

// revokedTokenPrefix is the Redis key prefix for the token denylist.
const revokedTokenPrefix = "auth:revoked:"

// RevokeToken puts a token id on the denylist until the moment the
// token would have expired anyway. A non-positive ttl means the token
// is already expired and nothing needs to be stored.
func (c *Cache) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token id is on the denylist.
func (c *Cache) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
