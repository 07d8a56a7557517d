// Package lock serializes writers of the per-jurisdiction requirement
// catalog. Two simultaneous regulatory uploads for the same jurisdiction
// must not interleave their dedup-then-insert passes, or the catalog
// ends up with duplicate requirement ids.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const pollInterval = 100 * time.Millisecond

// Locker grants exclusive leases on string keys. Acquire blocks until
// the lease is granted or ctx ends; the returned release func is safe to
// call exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// RedisLocker implements Locker with SET NX leases, giving mutual
// exclusion across processes. The ttl bounds how long a crashed holder
// can block other writers.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	redisKey := "lock:" + key

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
		case <-time.After(pollInterval):
		}
	}

	release := func() {
		// Only the holder may delete the lease; a stale release after
		// ttl expiry must not evict the next holder.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		current, err := l.client.Get(ctx, redisKey).Result()
		if err == nil && current == token {
			l.client.Del(ctx, redisKey)
		}
	}
	return release, nil
}

// LocalLocker implements Locker with in-process mutexes, used when no
// Redis is configured. Sufficient for single-instance deployments; the
// ttl is ignored because a crashed holder takes the process with it.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string, _ time.Duration) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	acquired := make(chan struct{})
	go func() {
		m.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return m.Unlock, nil
	case <-ctx.Done():
		// The goroutine will eventually take the mutex; hand it straight
		// back so the next waiter is not starved.
		go func() {
			<-acquired
			m.Unlock()
		}()
		return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
	}
}
