// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/domain/wishlist"
	"github.com/your-org/auramart-backend/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	catalog         *catalog.Catalog
	wishlistService *wishlist.Service
	config          *config.Config
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(cat *catalog.Catalog, wishlistService *wishlist.Service, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{
		catalog:         cat,
		wishlistService: wishlistService,
		config:          cfg,
	}
}

// GetWishlist handles GET /wishlist, resolving IDs against the catalog
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	ids, err := h.wishlistService.IDs(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve wishlist",
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
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"ids":      ids,
			"products": products,
			"count":    len(ids),
		},
	})
}

// ToggleWishlist handles POST /wishlist/:id/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if _, ok := h.catalog.Lookup(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	inWishlist, err := h.wishlistService.Toggle(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to toggle wishlist item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"data": gin.H{
			"product_id":  productID,
			"in_wishlist": inWishlist,
		},
	})
}

// CheckWishlist handles GET /wishlist/:id
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	inWishlist, err := h.wishlistService.Contains(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist membership retrieved successfully",
		"data": gin.H{
			"product_id":  productID,
			"in_wishlist": inWishlist,
		},
	})
}
