// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/domain/recent"
	"github.com/your-org/auramart-backend/internal/interfaces/http/middleware"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog       *catalog.Catalog
	recentService *recent.Service
	config        *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat *catalog.Catalog, recentService *recent.Service, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalog:       cat,
		recentService: recentService,
		config:        cfg,
	}
}

// GetProducts handles GET /products with shop filter/sort parameters
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var query catalog.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.catalog.Filter(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id and records the view in the
// session's recently-viewed list
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.catalog.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	// A failed view record must not block the product page
	sessionID := middleware.GetSessionID(c)
	if _, err := h.recentService.Add(c.Request.Context(), sessionID, product.ID); err != nil {
		_ = c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}
