package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// PublicCachePolicy lets the CDN serve slightly stale copies while
	// revalidating in the background.
	PublicCachePolicy = "public, s-maxage=60, stale-while-revalidate=120"
	NoStorePolicy     = "no-store"
)

// CacheControl stamps every response in a group with the given policy.
func CacheControl(policy string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", policy)
		c.Next()
	}
}
