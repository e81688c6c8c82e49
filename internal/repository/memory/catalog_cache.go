package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// CatalogCache keeps university lookups by country set. The catalog only changes when
// seeded, so entries simply expire.
type CatalogCache struct {
	cache *cache.Cache
}

func NewCatalogCache(ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CatalogCache) FindByCountries(ctx context.Context, repo contract.UniversityRepository, countries []string) ([]*entity.University, error) {
	key := catalogKey(countries)
	if x, found := c.cache.Get(key); found {
		return slices.Clone(x.([]*entity.University)), nil
	}

	universities, err := repo.FindByCountries(ctx, countries)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, universities, cache.DefaultExpiration)
	return slices.Clone(universities), nil
}

func (c *CatalogCache) Flush() {
	c.cache.Flush()
}

func catalogKey(countries []string) string {
	if len(countries) == 0 {
		return "catalog:*"
	}
	sorted := slices.Clone(countries)
	slices.Sort(sorted)
	return "catalog:" + strings.Join(slices.Compact(sorted), ",")
}
