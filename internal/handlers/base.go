package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gamescove/internal/services"
	"gamescove/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pageTTL = 60 * time.Second

// jsonError is the single place handler errors become HTTP bodies.
func jsonError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// respondFetch maps a repository read error onto 404/500.
func respondFetch(c *gin.Context, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, what+" not found")
		return
	}
	jsonError(c, http.StatusInternalServerError, "failed to load "+what)
}

// cachedJSON serves a public read through the page cache, keyed by the full
// request URI so query variants cache independently.
func cachedJSON(c *gin.Context, load func() (interface{}, error)) {
	key := services.PageCacheKey(c.Request.URL.RequestURI())
	if data := utils.GetCache().Get(key); data != nil {
		c.JSON(http.StatusOK, data)
		return
	}

	data, err := load()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load data")
		return
	}
	utils.GetCache().Set(key, data, pageTTL)
	c.JSON(http.StatusOK, data)
}

// optionalURL stores empty optional URL fields as absent rather than "".
func optionalURL(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func queryID(c *gin.Context) uint {
	return uint(utils.StringToInt(c.Query("id")))
}
