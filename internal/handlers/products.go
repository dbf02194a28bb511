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

type ProductsHandler struct {
	repos *repository.Repos
}

func NewProductsHandler(repos *repository.Repos) *ProductsHandler {
	return &ProductsHandler{repos: repos}
}

type productRequest struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Price       string   `json:"price"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Gallery     []string `json:"gallery"`
	Category    string   `json:"category"`
}

func (req *productRequest) apply(product *models.Product) {
	product.Name = strings.TrimSpace(req.Name)
	product.Image = req.Image
	product.Price = req.Price
	product.URL = req.URL
	if strings.TrimSpace(product.URL) == "" {
		product.URL = "#"
	}
	product.Description = req.Description
	product.Gallery = datatypes.NewJSONSlice(req.Gallery)
	product.Category = req.Category
}

func (h *ProductsHandler) List(c *gin.Context) {
	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Products.All()
	})
}

func (h *ProductsHandler) Detail(c *gin.Context) {
	param := c.Param("id")
	var (
		product *models.Product
		err     error
	)
	if id := utils.StringToInt(param); id > 0 {
		product, err = h.repos.Products.ByID(uint(id))
	} else {
		product, err = h.repos.Products.BySlug(param)
	}
	if err != nil {
		respondFetch(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) AdminList(c *gin.Context) {
	products, err := h.repos.Products.All()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		jsonError(c, http.StatusBadRequest, "name is required")
		return
	}

	slug, err := h.repos.Products.UniqueSlug(req.Name, 0)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate slug")
		return
	}

	var product models.Product
	req.apply(&product)
	product.Slug = slug

	if err := h.repos.Products.Create(&product); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save product")
		return
	}

	services.Revalidate("/api/products")
	c.JSON(http.StatusCreated, product)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		jsonError(c, http.StatusBadRequest, "name is required")
		return
	}

	product, err := h.repos.Products.ByID(req.ID)
	if err != nil {
		respondFetch(c, err, "product")
		return
	}

	slug, err := h.repos.Products.UniqueSlug(req.Name, product.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate slug")
		return
	}

	req.apply(product)
	product.Slug = slug

	if err := h.repos.Products.Update(product); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save product")
		return
	}

	services.Revalidate("/api/products")
	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id := queryID(c)
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.repos.Products.Delete(id); err != nil {
		respondFetch(c, err, "product")
		return
	}

	services.Revalidate("/api/products")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
