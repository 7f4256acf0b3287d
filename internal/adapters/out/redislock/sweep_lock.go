// Package redislock provides a Redis lease that lets one replica at a time run the sweep.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lease that another replica has since taken is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

const releaseTimeout = 2 * time.Second

// SweepLock is a lease stored under one key with SET NX PX.
// The TTL bounds how long a crashed holder blocks the others.
type SweepLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewSweepLock(client *redis.Client, key string, ttl time.Duration, logger *slog.Logger) (*SweepLock, error) {
	if client == nil {
		return nil, errors.New("sweep lock requires a redis client")
	}
	if ttl <= 0 {
		return nil, errors.New("sweep lock requires a positive ttl")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = "selfstorage:sweep:lock"
	}

	return &SweepLock{
		client: client,
		key:    key,
		ttl:    ttl,
		logger: logger.With("component", "sweep_lock"),
	}, nil
}

// TryLock does not wait. ok is false when another holder has the lease.
func (l *SweepLock) TryLock(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire sweep lock: %w", err)
	}
	if !acquired {
		return func() {}, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		if relErr := releaseScript.Run(releaseCtx, l.client, []string{l.key}, token).Err(); relErr != nil {
			l.logger.WarnContext(releaseCtx, "Failed to release sweep lock", "error", relErr)
		}
	}

	return release, true, nil
}
