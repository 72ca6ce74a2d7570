package memo

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Policy selects how many entries a Cache keeps and for how long.
type Policy struct {
	maxEntries int
	ttl        time.Duration
}

// Unbounded keeps every entry for the lifetime of the cache.
func Unbounded() Policy { return Policy{} }

// LRU keeps at most max entries, evicting the least recently used.
// max <= 0 behaves like Unbounded.
func LRU(max int) Policy {
	if max < 0 {
		max = 0
	}
	return Policy{maxEntries: max}
}

// TTL expires entries ttl after they were stored. ttl <= 0 behaves like Unbounded.
func TTL(ttl time.Duration) Policy {
	if ttl < 0 {
		ttl = 0
	}
	return Policy{ttl: ttl}
}

// store is the subset shared by lru.Cache and expirable.LRU.
type store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Peek(key K) (V, bool)
	Add(key K, value V) bool
	Remove(key K) bool
	Len() int
}

func newStore[K comparable, V any](p Policy, onEvict func(K, V)) store[K, V] {
	if p.maxEntries > 0 && p.ttl == 0 {
		s, err := lru.NewWithEvict[K, V](p.maxEntries, onEvict)
		if err == nil {
			return s
		}
	}
	// size 0 disables the LRU bound and ttl 0 disables expiry
	return expirable.NewLRU[K, V](p.maxEntries, onEvict, p.ttl)
}
