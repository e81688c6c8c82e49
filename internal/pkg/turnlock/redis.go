package turnlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:turn:"

// releaseScript deletes the lease only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis extends a Local lock with a SET NX PX lease so several API replicas serialize
// turns of the same student. The lease expires on its own if a replica dies mid turn.
type Redis struct {
	local *Local
	rdb   redis.UniversalClient
	ttl   time.Duration
	retry time.Duration
}

func NewRedis(rdb redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{
		local: NewLocal(),
		rdb:   rdb,
		ttl:   ttl,
		retry: 50 * time.Millisecond,
	}
}

func (r *Redis) Acquire(ctx context.Context, key uuid.UUID) (func(), error) {
	releaseLocal, err := r.local.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}

	redisKey := keyPrefix + key.String()
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.rdb.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			releaseLocal()
			return nil, fmt.Errorf("acquire turn lease: %w", err)
		}
		if ok {
			break
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			releaseLocal()
			return nil, ctx.Err()
		}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, r.rdb, []string{redisKey}, token).Err()
		releaseLocal()
	}, nil
}
