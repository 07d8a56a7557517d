package memory

import (
	"time"

	"ai-compliance-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CatalogCache keeps the active requirement catalog per jurisdiction in
// memory. Catalogs change only when a document finishes processing, so a
// short TTL plus explicit invalidation on write is enough.
type CatalogCache struct {
	cache *cache.Cache
}

func NewCatalogCache() *CatalogCache {
	// Default expiration 10 minutes, purge sweep every 10 minutes
	c := cache.New(10*time.Minute, 10*time.Minute)
	return &CatalogCache{
		cache: c,
	}
}

func (r *CatalogCache) Save(jurisdictionId uuid.UUID, requirements []*entity.Requirement) {
	r.cache.Set(jurisdictionId.String(), requirements, cache.DefaultExpiration)
}

func (r *CatalogCache) Get(jurisdictionId uuid.UUID) ([]*entity.Requirement, bool) {
	if x, found := r.cache.Get(jurisdictionId.String()); found {
		return x.([]*entity.Requirement), true
	}
	return nil, false
}

func (r *CatalogCache) Invalidate(jurisdictionId uuid.UUID) {
	r.cache.Delete(jurisdictionId.String())
}
