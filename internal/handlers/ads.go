package handlers

import (
	"net/http"

	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/services"

	"github.com/gin-gonic/gin"
)

type AdsHandler struct {
	repos *repository.Repos
}

func NewAdsHandler(repos *repository.Repos) *AdsHandler {
	return &AdsHandler{repos: repos}
}

// Codes serves the public placement -> code map used for script injection.
func (h *AdsHandler) Codes(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Ads.ByPlacement()
	})
}

func (h *AdsHandler) AdminList(c *gin.Context) {
	ads, err := h.repos.Ads.All()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

// Save upserts one code per submitted placement. All placements in a request
// are written in one transaction.
func (h *AdsHandler) Save(c *gin.Context) {
	var codes map[string]string
	if err := c.ShouldBindJSON(&codes); err != nil || len(codes) == 0 {
		jsonError(c, http.StatusBadRequest, "at least one placement is required")
		return
	}
	for placement := range codes {
		if !models.ValidAdPlacement(placement) {
			jsonError(c, http.StatusBadRequest, "unknown placement: "+placement)
			return
		}
	}

	if err := h.repos.Ads.SaveAll(codes); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save ads")
		return
	}

	services.Revalidate("/api/ads")
	ads, err := h.repos.Ads.ByPlacement()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdsHandler) Delete(c *gin.Context) {
	placement := c.Query("placement")
	if !models.ValidAdPlacement(placement) {
		jsonError(c, http.StatusBadRequest, "unknown placement: "+placement)
		return
	}

	if err := h.repos.Ads.DeleteByPlacement(placement); err != nil {
		respondFetch(c, err, "ad")
		return
	}

	services.Revalidate("/api/ads")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
