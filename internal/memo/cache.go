package memo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"mlmcompare/pkg/types"
)

var errComputePanicked = errors.New("memo: compute function panicked")

type entry[V any] struct {
	val V
	// dropped marks entries removed by Invalidate so they are not counted
	// as evictions.
	dropped atomic.Bool
}

// Cache maps keys to computed values. The zero value is not usable; use New.
type Cache[K comparable, V any] struct {
	name  string
	store store[K, *entry[V]]
	group singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache. name labels its metrics.
func New[K comparable, V any](name string, p Policy) *Cache[K, V] {
	c := &Cache[K, V]{name: name}
	c.store = newStore[K, *entry[V]](p, func(_ K, e *entry[V]) {
		if e.dropped.Load() {
			return
		}
		c.evictions.Add(1)
		cacheEvictions.WithLabelValues(name).Inc()
	})
	return c
}

// Get returns a stored, fresh value without computing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.store.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// GetOrCompute returns the stored value for key, or runs fn once and stores
// its result. Concurrent callers for the same key wait for the running call.
// When that call ended only because its caller's context did, waiters whose
// own context is still live run the computation again.
func (c *Cache[K, V]) GetOrCompute(ctx context.Context, key K, fn func(context.Context) (V, error)) (V, error) {
	if e, ok := c.store.Get(key); ok {
		c.hit()
		return e.val, nil
	}
	flightKey := fmt.Sprintf("%#v", key)
	for {
		led := false
		ch := c.group.DoChan(flightKey, func() (any, error) {
			led = true
			// a call that finished between the lookup above and here
			if e, ok := c.store.Peek(key); ok {
				c.hit()
				return e.val, nil
			}
			c.misses.Add(1)
			cacheLookups.WithLabelValues(c.name, "miss").Inc()
			v, err := compute(ctx, fn)
			if err != nil {
				return v, err
			}
			c.store.Add(key, &entry[V]{val: v})
			cacheEntries.WithLabelValues(c.name).Set(float64(c.store.Len()))
			return v, nil
		})

		var res singleflight.Result
		select {
		case res = <-ch:
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
		if !led {
			cacheLookups.WithLabelValues(c.name, "shared").Inc()
		}
		if res.Err != nil {
			if !led && isContextErr(res.Err) && ctx.Err() == nil {
				continue
			}
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

func (c *Cache[K, V]) hit() {
	c.hits.Add(1)
	cacheLookups.WithLabelValues(c.name, "hit").Inc()
}

// compute runs fn, turning a panic into an error so waiters are released.
func compute[V any](ctx context.Context, fn func(context.Context) (V, error)) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errComputePanicked, r)
		}
	}()
	return fn(ctx)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Invalidate drops key if present.
func (c *Cache[K, V]) Invalidate(key K) {
	if e, ok := c.store.Peek(key); ok {
		e.dropped.Store(true)
		c.store.Remove(key)
		cacheEntries.WithLabelValues(c.name).Set(float64(c.store.Len()))
	}
}

// Len returns the number of stored entries. Expired entries count until
// the background sweep removes them.
func (c *Cache[K, V]) Len() int { return c.store.Len() }

// Stats reports occupancy and hit counts.
func (c *Cache[K, V]) Stats() types.CacheStats {
	return types.CacheStats{
		Entries:   c.store.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
