// Package memo provides a keyed memo cache with single-flight computation.
//
//   - cache.go: Cache type, GetOrCompute, Get, Invalidate, Stats.
//   - policy.go: Policy selector (Unbounded, LRU, TTL) over golang-lru stores.
//   - metrics.go: Prometheus counters shared by every named cache.
//
// Errors returned by a compute function are handed to every waiter of that
// call but are never stored.
package memo
