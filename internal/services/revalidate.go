package services

import (
	"gamescove/internal/utils"

	"github.com/sirupsen/logrus"
)

// PageCacheKey builds the cache key for a public page path (query string
// included by callers that cache per-variant).
func PageCacheKey(path string) string {
	return "page:" + path
}

// Revalidate asynchronously drops the cached output of the given public page
// paths (and all their query variants) so the next read regenerates them.
// Best-effort by contract: the triggering write has already succeeded, so
// failures are logged and swallowed.
func Revalidate(paths ...string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("Revalidation failed: %v", r)
			}
		}()
		cache := utils.GetCache()
		for _, path := range paths {
			n := cache.DeletePrefix(PageCacheKey(path))
			logrus.WithFields(logrus.Fields{"path": path, "evicted": n}).Debug("revalidated page")
		}
	}()
}
