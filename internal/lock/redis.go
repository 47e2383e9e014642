package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "result_analysis:lock:"
	retryDelay   = 50 * time.Millisecond
	releaseLimit = 5 * time.Second
)

// release deletes the key only while it still holds our token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease lock shared by every instance pointed at the same server.
// A lease outliving ttl is released by expiry.
type Redis struct {
	log    *slog.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(log *slog.Logger, client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		log:    log,
		client: client,
		ttl:    ttl,
	}
}

func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to ping redis: %w", err), client.Close())
	}

	return client, nil
}

func (r *Redis) Lock(ctx context.Context, resource string) (func(), error) {
	key := keyPrefix + resource
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %q: %w", resource, err)
		}

		if ok {
			return func() { r.unlock(key, token) }, nil
		}

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (r *Redis) unlock(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseLimit)
	defer cancel()

	if err := release.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
		r.log.Error("failed to release lock", slog.String("key", key), slog.String("err", err.Error()))
	}
}
