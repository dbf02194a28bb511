package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/services"

	"github.com/gin-gonic/gin"
)

type SocialLinksHandler struct {
	repos *repository.Repos
}

func NewSocialLinksHandler(repos *repository.Repos) *SocialLinksHandler {
	return &SocialLinksHandler{repos: repos}
}

type socialLinkRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// normalize validates the request and returns the cleaned URL.
func (req *socialLinkRequest) normalize() (string, string, bool) {
	if strings.TrimSpace(req.Name) == "" {
		return "", "name is required", false
	}

	link := strings.TrimSpace(req.URL)
	if link == "" {
		return "", "url is required", false
	}
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}
	parsed, err := url.Parse(link)
	if err != nil || parsed.Host == "" {
		return "", "invalid url", false
	}

	if !strings.Contains(req.Icon, "<svg") {
		return "", "icon must be inline SVG markup", false
	}
	return link, "", true
}

func (h *SocialLinksHandler) List(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.SocialLinks.All()
	})
}

func (h *SocialLinksHandler) AdminList(c *gin.Context) {
	links, err := h.repos.SocialLinks.All()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load social links")
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *SocialLinksHandler) Create(c *gin.Context) {
	var req socialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	link, msg, ok := req.normalize()
	if !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	socialLink := models.SocialLink{
		Name: strings.TrimSpace(req.Name),
		URL:  link,
		Icon: req.Icon,
	}
	if err := h.repos.SocialLinks.Create(&socialLink); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save social link")
		return
	}

	services.Revalidate("/api/social-links")
	c.JSON(http.StatusCreated, socialLink)
}

func (h *SocialLinksHandler) Update(c *gin.Context) {
	var req socialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}
	link, msg, ok := req.normalize()
	if !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	socialLink, err := h.repos.SocialLinks.ByID(req.ID)
	if err != nil {
		respondFetch(c, err, "social link")
		return
	}

	socialLink.Name = strings.TrimSpace(req.Name)
	socialLink.URL = link
	socialLink.Icon = req.Icon

	if err := h.repos.SocialLinks.Update(socialLink); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save social link")
		return
	}

	services.Revalidate("/api/social-links")
	c.JSON(http.StatusOK, socialLink)
}

func (h *SocialLinksHandler) Delete(c *gin.Context) {
	id := queryID(c)
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.repos.SocialLinks.Delete(id); err != nil {
		respondFetch(c, err, "social link")
		return
	}

	services.Revalidate("/api/social-links")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
