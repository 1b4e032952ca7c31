package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/redis/go-redis/v9"
)

const (
	redisLockPrefix   = "go-sheet-sync:lock:"
	redisLockPollStep = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
	tokens *utils.UUIDGenerator

	logger *logger.Logger
}

// NewRedisLocker returns a [RecordLocker] shared by every process using the
// same redis. A lock whose owner died expires after cfg.TTL.
func NewRedisLocker(ctx context.Context, cfg config.Lock, log *logger.Logger) (RecordLocker, *redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	return newRedisLocker(client, cfg.TTL, log), client, nil
}

func newRedisLocker(client *redis.Client, ttl time.Duration, log *logger.Logger) *redisLocker {
	return &redisLocker{client: client, ttl: ttl, tokens: utils.NewUUIDGenerator(), logger: log}
}

func (r *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = redisLockPrefix + key
	token := r.tokens.Generate()

	ticker := time.NewTicker(redisLockPollStep)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLockNotAcquired, key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrLockNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}

	return func() {
		// the caller's ctx may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err(); err != nil {
			r.logger.Err(err).Str("func", "redisLocker.Lock").Str("key", key).Msg("failed to release lock")
		}
	}, nil
}

// NewRecordLocker selects the redis locker when cfg.RedisURL is set and the
// in-memory one otherwise. The returned closer releases the redis client.
func NewRecordLocker(ctx context.Context, cfg config.Lock, log *logger.Logger) (RecordLocker, func() error, error) {
	if cfg.RedisURL == "" {
		return NewMemoryLocker(), func() error { return nil }, nil
	}

	locker, client, err := NewRedisLocker(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("func", "NewRecordLocker").Msg("using redis record locks")
	return locker, client.Close, nil
}
