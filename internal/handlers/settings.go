package handlers

import (
	"net/http"

	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repos *repository.Repos
}

func NewSettingsHandler(repos *repository.Repos) *SettingsHandler {
	return &SettingsHandler{repos: repos}
}

// Get serves the merged settings object (stored values over defaults).
func (h *SettingsHandler) Get(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Settings.Merged()
	})
}

func (h *SettingsHandler) AdminGet(c *gin.Context) {
	merged, err := h.repos.Settings.Merged()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, merged)
}

// Save upserts the submitted keys in one transaction; unknown keys reject the
// whole request.
func (h *SettingsHandler) Save(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil || len(values) == 0 {
		jsonError(c, http.StatusBadRequest, "at least one setting is required")
		return
	}
	for key := range values {
		if !models.ValidSettingKey(key) {
			jsonError(c, http.StatusBadRequest, "unknown setting: "+key)
			return
		}
	}

	if err := h.repos.Settings.SaveAll(values); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save settings")
		return
	}

	services.Revalidate("/api/settings")
	merged, err := h.repos.Settings.Merged()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, merged)
}
