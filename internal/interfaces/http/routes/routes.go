// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/domain/cart"
	"github.com/your-org/auramart-backend/internal/domain/checkout"
	"github.com/your-org/auramart-backend/internal/domain/recent"
	"github.com/your-org/auramart-backend/internal/domain/rewards"
	"github.com/your-org/auramart-backend/internal/domain/wishlist"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
	"github.com/your-org/auramart-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires every storefront route under the given group
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, store *kv.Client, cfg *config.Config, logger *logrus.Logger) {
	cartService := cart.NewService(store, cfg)
	wishlistService := wishlist.NewService(store, cfg)
	recentService := recent.NewService(store, cfg)
	rewardsService := rewards.NewService(store, cfg, logger)
	checkoutService := checkout.NewService(cartService, rewardsService)

	productHandler := handlers.NewProductHandler(cat, recentService, cfg)
	cartHandler := handlers.NewCartHandler(cat, cartService, cfg)
	wishlistHandler := handlers.NewWishlistHandler(cat, wishlistService, cfg)
	recentHandler := handlers.NewRecentHandler(cat, recentService, cfg)
	rewardsHandler := handlers.NewRewardsHandler(rewardsService, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}

	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	rg.POST("/checkout", checkoutHandler.Checkout)

	wishlistRoutes := rg.Group("/wishlist")
	{
		wishlistRoutes.GET("", wishlistHandler.GetWishlist)
		wishlistRoutes.GET("/:id", wishlistHandler.CheckWishlist)
		wishlistRoutes.POST("/:id/toggle", wishlistHandler.ToggleWishlist)
	}

	rg.GET("/recently-viewed", recentHandler.GetRecentlyViewed)

	rewardsRoutes := rg.Group("/rewards")
	{
		rewardsRoutes.GET("", rewardsHandler.GetRewards)
		rewardsRoutes.POST("/points", rewardsHandler.AddPoints)
		rewardsRoutes.POST("/check-badges", rewardsHandler.CheckBadges)
	}
}
