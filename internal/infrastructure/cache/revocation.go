package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "session:revoked:"

// RevocationList remembers signed-out session ids until their tokens expire.
type RevocationList struct{ rdb *redis.Client }

func NewRevocationList(rdb *redis.Client) *RevocationList { return &RevocationList{rdb: rdb} }

// Revoke is a no-op for tokens that are already expired.
func (r *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

func (r *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.rdb.Get(ctx, revokedPrefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	}
	return false, err
}
