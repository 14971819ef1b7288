// internal/interfaces/http/handlers/recent.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/domain/recent"
	"github.com/your-org/auramart-backend/internal/interfaces/http/middleware"
)

// RecentHandler handles recently-viewed endpoints
type RecentHandler struct {
	catalog       *catalog.Catalog
	recentService *recent.Service
	config        *config.Config
}

// NewRecentHandler creates a new recently-viewed handler
func NewRecentHandler(cat *catalog.Catalog, recentService *recent.Service, cfg *config.Config) *RecentHandler {
	return &RecentHandler{
		catalog:       cat,
		recentService: recentService,
		config:        cfg,
	}
}

// GetRecentlyViewed handles GET /recently-viewed, resolving IDs against
// the catalog in most-recent-first order
func (h *RecentHandler) GetRecentlyViewed(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	ids, err := h.recentService.List(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve recently viewed products",
		})
		return
	}

	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := h.catalog.Lookup(id); ok {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recently viewed products retrieved successfully",
		"data": gin.H{
			"ids":      ids,
			"products": products,
		},
	})
}
