package handlers

import (
	"net/http"
	"strings"

	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/services"
	"gamescove/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type GamesHandler struct {
	repos *repository.Repos
}

func NewGamesHandler(repos *repository.Repos) *GamesHandler {
	return &GamesHandler{repos: repos}
}

type gameRequest struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Theme       string   `json:"theme"`
	Description string   `json:"description"`
	VideoURL    string   `json:"video_url"`
	DownloadURL string   `json:"download_url"`
	Gallery     []string `json:"gallery"`
}

func (req *gameRequest) validate() (string, bool) {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required", false
	}
	if !models.ValidGameTheme(req.Theme) {
		return "unknown theme: " + req.Theme, false
	}
	return "", true
}

func (req *gameRequest) apply(game *models.Game) {
	game.Title = strings.TrimSpace(req.Title)
	game.Image = req.Image
	game.Category = req.Category
	game.Tags = datatypes.NewJSONSlice(req.Tags)
	game.Theme = req.Theme
	game.Description = req.Description
	game.VideoURL = optionalURL(req.VideoURL)
	game.DownloadURL = req.DownloadURL
	if strings.TrimSpace(game.DownloadURL) == "" {
		game.DownloadURL = "#"
	}
	game.Gallery = datatypes.NewJSONSlice(req.Gallery)
}

// List is the public catalog; ?featured=1 narrows to the Featured tag.
func (h *GamesHandler) List(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		if c.Query("featured") == "1" {
			return h.repos.Games.Featured()
		}
		return h.repos.Games.All()
	})
}

// Detail accepts a numeric id or a slug.
func (h *GamesHandler) Detail(c *gin.Context) {
	param := c.Param("id")
	var (
		game *models.Game
		err  error
	)
	if id := utils.StringToInt(param); id > 0 {
		game, err = h.repos.Games.ByID(uint(id))
	} else {
		game, err = h.repos.Games.BySlug(param)
	}
	if err != nil {
		respondFetch(c, err, "game")
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GamesHandler) AdminList(c *gin.Context) {
	games, err := h.repos.Games.All()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load games")
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *GamesHandler) Create(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	slug, err := h.repos.Games.UniqueSlug(req.Title, 0)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate slug")
		return
	}

	var game models.Game
	req.apply(&game)
	game.Slug = slug

	if err := h.repos.Games.Create(&game); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save game")
		return
	}

	services.Revalidate("/api/games")
	c.JSON(http.StatusCreated, game)
}

func (h *GamesHandler) Update(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}
	if msg, ok := req.validate(); !ok {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	game, err := h.repos.Games.ByID(req.ID)
	if err != nil {
		respondFetch(c, err, "game")
		return
	}

	slug, err := h.repos.Games.UniqueSlug(req.Title, game.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate slug")
		return
	}

	req.apply(game)
	game.Slug = slug

	if err := h.repos.Games.Update(game); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save game")
		return
	}

	services.Revalidate("/api/games")
	c.JSON(http.StatusOK, game)
}

func (h *GamesHandler) Delete(c *gin.Context) {
	id := queryID(c)
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.repos.Games.Delete(id); err != nil {
		respondFetch(c, err, "game")
		return
	}

	services.Revalidate("/api/games")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
