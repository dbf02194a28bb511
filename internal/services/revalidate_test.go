package services

import (
	"testing"
	"time"

	"gamescove/internal/utils"
)

func TestRevalidateEvictsQueryVariants(t *testing.T) {
	cache := utils.GetCache()
	cache.Set(PageCacheKey("/api/games"), "list", time.Minute)
	cache.Set(PageCacheKey("/api/games?featured=1"), "featured", time.Minute)
	cache.Set(PageCacheKey("/api/blogs"), "blogs", time.Minute)

	Revalidate("/api/games")

	// Eviction is asynchronous; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cache.Get(PageCacheKey("/api/games")) == nil &&
			cache.Get(PageCacheKey("/api/games?featured=1")) == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if cache.Get(PageCacheKey("/api/games")) != nil {
		t.Error("list page not evicted")
	}
	if cache.Get(PageCacheKey("/api/games?featured=1")) != nil {
		t.Error("query variant not evicted")
	}
	if cache.Get(PageCacheKey("/api/blogs")) == nil {
		t.Error("unrelated page evicted")
	}
}
