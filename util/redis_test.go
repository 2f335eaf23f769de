package util

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func TestCacheServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	cache := NewCacheService(client, time.Minute)

	missing, err := cache.GetRule(ctx, "r1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	rule := model.Rule{
		ID:   "r1",
		Name: "Coastal",
		FunctionalRule: *model.Or(
			&model.LeafCondition{ObservationTypeID: "roof_type", ObservationValueIDs: []string{"wood"}},
		),
		Version: 2,
	}
	require.NoError(t, cache.SetRule(ctx, rule))
	assert.True(t, mr.Exists("rule:r1"))
	assert.Equal(t, time.Minute, mr.TTL("rule:r1"))

	cached, err := cache.GetRule(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 2, cached.Version)
	leaf := cached.FunctionalRule.Conditions[0].(*model.LeafCondition)
	assert.Equal(t, []string{"wood"}, leaf.ObservationValueIDs)

	require.NoError(t, cache.DeleteRule(ctx, "r1"))
	assert.False(t, mr.Exists("rule:r1"))

	mr.FastForward(2 * time.Minute)
	gone, err := cache.GetRule(ctx, "r1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCacheServiceWithoutClient(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(nil, time.Minute)

	rule, err := cache.GetRule(ctx, "r1")
	assert.NoError(t, err)
	assert.Nil(t, rule)
	assert.NoError(t, cache.SetRule(ctx, model.Rule{ID: "r1"}))
	assert.NoError(t, cache.DeleteRule(ctx, "r1"))
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	locker := NewRedisLocker(client, time.Second, 100*time.Millisecond)

	release, err := locker.Lock(ctx, RuleLockKey("r1"))
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:rule:r1"))

	t.Run("second holder times out", func(t *testing.T) {
		_, err := locker.Lock(ctx, RuleLockKey("r1"))
		assert.ErrorIs(t, err, hazard_errors.ErrLockTimeout)
	})

	t.Run("other keys are independent", func(t *testing.T) {
		other, err := locker.Lock(ctx, RuleLockKey("r2"))
		require.NoError(t, err)
		other()
	})

	release()
	assert.False(t, mr.Exists("lock:rule:r1"))

	again, err := locker.Lock(ctx, RuleLockKey("r1"))
	require.NoError(t, err)
	again()
}

func TestRedisLockerExtendsWhileHeld(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	locker := NewRedisLocker(client, 300*time.Millisecond, 50*time.Millisecond)

	release, err := locker.Lock(ctx, "k")
	require.NoError(t, err)

	// past most of the ttl, then give the holder a chance to renew
	mr.FastForward(250 * time.Millisecond)
	assert.Eventually(t, func() bool {
		return mr.TTL("lock:k") > 250*time.Millisecond
	}, time.Second, 10*time.Millisecond)

	mr.FastForward(250 * time.Millisecond)
	assert.True(t, mr.Exists("lock:k"))

	_, err = locker.Lock(ctx, "k")
	assert.ErrorIs(t, err, hazard_errors.ErrLockTimeout)

	release()
	release()
	assert.False(t, mr.Exists("lock:k"))
}

func TestRedisLockerReleaseKeepsForeignLock(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	locker := NewRedisLocker(client, time.Second, 50*time.Millisecond)

	release, err := locker.Lock(ctx, "k")
	require.NoError(t, err)

	// the lock expired and somebody else took it
	require.NoError(t, mr.Set("lock:k", "someone-else"))
	release()

	value, err := mr.Get("lock:k")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", value)
}

func TestLocalLockerSerialises(t *testing.T) {
	ctx := context.Background()
	locker := NewLocalLocker(time.Second)

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(ctx, "rule:r1")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestLocalLockerTimeout(t *testing.T) {
	ctx := context.Background()
	locker := NewLocalLocker(20 * time.Millisecond)

	release, err := locker.Lock(ctx, "k")
	require.NoError(t, err)

	_, err = locker.Lock(ctx, "k")
	assert.ErrorIs(t, err, hazard_errors.ErrLockTimeout)

	release()
	release()

	again, err := locker.Lock(ctx, "k")
	require.NoError(t, err)
	again()
}
