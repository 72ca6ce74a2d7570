package registry

import (
	"context"
	"time"

	"mlmcompare/internal/memo"
	"mlmcompare/pkg/types"
)

type listKey struct {
	language string
	task     string
}

// Cached memoizes a Source per (language, task) for ttl.
type Cached struct {
	next  Source
	cache *memo.Cache[listKey, []types.Model]
}

// NewCached wraps next. ttl <= 0 keeps listings for the process lifetime.
func NewCached(next Source, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: memo.New[listKey, []types.Model]("registry", memo.TTL(ttl)),
	}
}

// ListModels returns a copy of the cached listing, fetching it on a miss.
// Failed fetches are not cached, so the next page render retries.
func (c *Cached) ListModels(ctx context.Context, language, task string) ([]types.Model, error) {
	models, err := c.cache.GetOrCompute(ctx, listKey{language, task}, func(ctx context.Context) ([]types.Model, error) {
		return c.next.ListModels(ctx, language, task)
	})
	if err != nil {
		return nil, err
	}
	return append([]types.Model(nil), models...), nil
}
