// api/util/lock.go

package util

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
)

// Locker serialises work on a key. Lock blocks until the key is free, the
// wait budget runs out (errors.ErrLockTimeout) or ctx is done. The returned
// release func must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// RuleLockKey is the lock key guarding a rule and the vulnerabilities it owns.
func RuleLockKey(ruleID string) string {
	return "rule:" + ruleID
}

const lockRetryInterval = 25 * time.Millisecond

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript resets the lock expiry only while it still holds our token.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker is a single-instance Redis lock. Entries expire after ttl so a
// crashed holder cannot block a key forever; a live holder renews the expiry
// every ttl/3 until it releases.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, wait: wait}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := fmt.Sprintf("lock:%s", key)
	token := uuid.New().String()
	deadline := time.Now().Add(l.wait)

	for {
		acquired, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if acquired {
			logger.Debug("Lock acquired", zap.String("key", key))
			stop := make(chan struct{})
			go l.keepAlive(lockKey, token, stop)

			var once sync.Once
			return func() {
				once.Do(func() {
					close(stop)
					l.release(lockKey, token)
				})
			}, nil
		}
		if time.Now().After(deadline) {
			logger.Warn("Timed out waiting for lock", zap.String("key", key), zap.Duration("wait", l.wait))
			return nil, fmt.Errorf("%w: %s", hazard_errors.ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

func (l *RedisLocker) keepAlive(lockKey, token string, stop <-chan struct{}) {
	interval := l.ttl / 3
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			held, err := extendScript.Run(ctx, l.client, []string{lockKey}, token, l.ttl.Milliseconds()).Int()
			cancel()
			if err != nil {
				logger.Warn("Failed to extend lock", zap.String("key", lockKey), zap.Error(err))
				continue
			}
			if held == 0 {
				logger.Warn("Lock lost before release", zap.String("key", lockKey))
				return
			}
		}
	}
}

func (l *RedisLocker) release(lockKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
		logger.Error("Failed to release lock", zap.String("key", lockKey), zap.Error(err))
		return
	}
	logger.Debug("Lock released", zap.String("key", lockKey))
}

// LocalLocker is the in-process Locker used with the memory store.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
	wait  time.Duration
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{}), wait: wait}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	l.mu.Unlock()

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-slot }) }, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s", hazard_errors.ErrLockTimeout, key)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
