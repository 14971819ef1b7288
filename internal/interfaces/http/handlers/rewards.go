// internal/interfaces/http/handlers/rewards.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/domain/rewards"
	"github.com/your-org/auramart-backend/internal/interfaces/http/middleware"
)

// RewardsHandler handles gamification endpoints
type RewardsHandler struct {
	rewardsService *rewards.Service
	config         *config.Config
}

// NewRewardsHandler creates a new rewards handler
func NewRewardsHandler(rewardsService *rewards.Service, cfg *config.Config) *RewardsHandler {
	return &RewardsHandler{
		rewardsService: rewardsService,
		config:         cfg,
	}
}

// AddPointsRequest represents an add points request. The reason is
// recorded for the activity log only.
type AddPointsRequest struct {
	Amount int    `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

// GetRewards handles GET /rewards
func (h *RewardsHandler) GetRewards(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	state, err := h.rewardsService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve rewards",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rewards retrieved successfully",
		"data":    state,
	})
}

// AddPoints handles POST /rewards/points
func (h *RewardsHandler) AddPoints(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.rewardsService.AddPoints(c.Request.Context(), sessionID, req.Amount, req.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add points",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Points added successfully",
		"data":    state,
	})
}

// CheckBadges handles POST /rewards/check-badges
func (h *RewardsHandler) CheckBadges(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	state, err := h.rewardsService.CheckBadges(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check badges",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Badges evaluated successfully",
		"data":    state,
	})
}
