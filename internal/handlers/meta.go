package handlers

import (
	"gamescove/internal/repository"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves distinct-value lookups for form auto-complete.
type MetaHandler struct {
	repos *repository.Repos
}

func NewMetaHandler(repos *repository.Repos) *MetaHandler {
	return &MetaHandler{repos: repos}
}

func (h *MetaHandler) Categories(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Meta.Categories()
	})
}

func (h *MetaHandler) Tags(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Meta.Tags()
	})
}
