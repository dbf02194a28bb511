package handlers

import (
	"net/http"
	"strings"
	"time"

	"gamescove/internal/content"
	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/services"
	"gamescove/internal/utils"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	repos *repository.Repos
}

func NewBlogsHandler(repos *repository.Repos) *BlogsHandler {
	return &BlogsHandler{repos: repos}
}

type blogRequest struct {
	ID           uint        `json:"id"`
	Title        string      `json:"title"`
	Summary      string      `json:"summary"`
	Image        string      `json:"image"`
	VideoURL     string      `json:"video_url"`
	Author       string      `json:"author"`
	PublishDate  string      `json:"publish_date"`
	Rating       interface{} `json:"rating"`
	AffiliateURL string      `json:"affiliate_url"`
	Content      string      `json:"content"`
	Category     string      `json:"category"`
}

func (req *blogRequest) validate() (string, bool) {
	required := []struct{ field, value string }{
		{"title", req.Title},
		{"summary", req.Summary},
		{"image", req.Image},
		{"author", req.Author},
		{"content", req.Content},
		{"category", req.Category},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return f.field + " is required", false
		}
	}
	return "", true
}

// coerceRating accepts a JSON number or string; unparsable input defaults to
// 0, and values are clamped to [0, 5].
func coerceRating(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		if t > 5 {
			return 5
		}
		return t
	case string:
		return utils.ParseRating(strings.TrimSpace(t))
	default:
		return 0
	}
}

func (req *blogRequest) apply(post *models.BlogPost) (string, bool) {
	post.Title = strings.TrimSpace(req.Title)
	post.Summary = req.Summary
	post.Image = req.Image
	post.VideoURL = optionalURL(req.VideoURL)
	post.Author = req.Author
	post.Rating = coerceRating(req.Rating)
	post.AffiliateURL = optionalURL(req.AffiliateURL)
	post.Content = req.Content
	post.Category = req.Category

	if strings.TrimSpace(req.PublishDate) == "" {
		post.PublishDate = time.Now().Format("2006-01-02")
		return "", true
	}
	parsed, err := dateparse.ParseAny(req.PublishDate)
	if err != nil {
		return "invalid publish date", false
	}
	post.PublishDate = parsed.Format("2006-01-02")
	return "", true
}

func (h *BlogsHandler) List(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Blogs.All()
	})
}

// blogDetail carries the stored post plus its rendered HTML.
type blogDetail struct {
	models.BlogPost
	ContentHTML string `json:"content_html"`
}

// Detail resolves by id or slug, bumps the view counter and returns the post
// with rendered content.
func (h *BlogsHandler) Detail(c *gin.Context) {
	param := c.Param("id")
	var (
		post *models.BlogPost
		err  error
	)
	if id := utils.StringToInt(param); id > 0 {
		post, err = h.repos.Blogs.ByID(uint(id))
	} else {
		post, err = h.repos.Blogs.BySlug(param)
	}
	if err != nil {
		respondFetch(c, err, "blog post")
		return
	}

	if err := h.repos.Blogs.IncrementViews(post.ID); err != nil {
		logrus.Errorf("Failed to increment views for blog %d: %v", post.ID, err)
	} else {
		post.ViewCount++
	}

	c.JSON(http.StatusOK, blogDetail{
		BlogPost:    *post,
		ContentHTML: content.Render(post.Content),
	})
}

func (h *BlogsHandler) AdminList(c *gin.Context) {
	posts, err := h.repos.Blogs.All()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogsHandler) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	slug, err := h.repos.Blogs.UniqueSlug(req.Title, 0)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate slug")
		return
	}

	var post models.BlogPost
	if msg, ok := req.apply(&post); !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}
	post.Slug = slug

	if err := h.repos.Blogs.Create(&post); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save blog post")
		return
	}

	services.Revalidate("/api/blogs")
	c.JSON(http.StatusCreated, post)
}

func (h *BlogsHandler) Update(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}
	if msg, ok := req.validate(); !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	post, err := h.repos.Blogs.ByID(req.ID)
	if err != nil {
		respondFetch(c, err, "blog post")
		return
	}

	slug, err := h.repos.Blogs.UniqueSlug(req.Title, post.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate slug")
		return
	}

	if msg, ok := req.apply(post); !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}
	post.Slug = slug

	if err := h.repos.Blogs.Update(post); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save blog post")
		return
	}

	services.Revalidate("/api/blogs")
	c.JSON(http.StatusOK, post)
}

func (h *BlogsHandler) Delete(c *gin.Context) {
	id := queryID(c)
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.repos.Blogs.Delete(id); err != nil {
		respondFetch(c, err, "blog post")
		return
	}

	services.Revalidate("/api/blogs")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
