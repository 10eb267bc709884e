package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"items-backend/internal/domains/item/model"
	"items-backend/pkg/cache"
)

const listCacheKey = "items:all"

func itemCacheKey(id int64) string {
	return fmt.Sprintf("item:%d", id)
}

// cachedRepository wraps a Repository with a cache-aside layer.
// Reads try the cache first; every write invalidates the item key and the
// list key. Cache failures never fail a request.
//
// writes counts completed writes. A read only fills the cache when no write
// finished between its store read and its Set, so a fill racing a write
// cannot put rows back that the write's invalidation already removed.
// mu makes check+Set and bump+invalidate mutually exclusive.
type cachedRepository struct {
	next   Repository
	cache  cache.Cache
	ttl    time.Duration
	mu     sync.RWMutex
	writes atomic.Uint64
}

// NewCachedRepository decorates next with cache-aside reads
func NewCachedRepository(next Repository, c cache.Cache, ttl time.Duration) Repository {
	return &cachedRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (r *cachedRepository) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	r.written(ctx, listCacheKey)
	return created, nil
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	key := itemCacheKey(id)

	var cached model.Item
	found, err := r.cache.Get(ctx, key, &cached)
	if err == nil && found {
		return &cached, nil
	}
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache get failed")
	}

	gen := r.writes.Load()
	it, err := r.next.GetByID(ctx, id)
	if err != nil || it == nil {
		return it, err
	}

	r.fill(ctx, gen, key, it)
	return it, nil
}

func (r *cachedRepository) List(ctx context.Context) ([]*model.Item, error) {
	var cached []*model.Item
	found, err := r.cache.Get(ctx, listCacheKey, &cached)
	if err == nil && found && cached != nil {
		return cached, nil
	}
	if err != nil {
		log.Debug().Err(err).Str("key", listCacheKey).Msg("cache get failed")
	}

	gen := r.writes.Load()
	items, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	r.fill(ctx, gen, listCacheKey, items)
	return items, nil
}

func (r *cachedRepository) Update(ctx context.Context, id int64, item *model.Item) (*model.Item, error) {
	updated, err := r.next.Update(ctx, id, item)
	if err != nil {
		return nil, err
	}
	r.written(ctx, itemCacheKey(id), listCacheKey)
	return updated, nil
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.written(ctx, itemCacheKey(id), listCacheKey)
	return deleted, nil
}

// fill stores value unless a write completed since gen was read
func (r *cachedRepository) fill(ctx context.Context, gen uint64, key string, value interface{}) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.writes.Load() != gen {
		log.Debug().Str("key", key).Msg("cache fill skipped after concurrent write")
		return
	}
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// written records a completed write and drops the keys it made stale
func (r *cachedRepository) written(ctx context.Context, keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes.Add(1)
	r.invalidate(ctx, keys...)
}

func (r *cachedRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
