package handler

import (
	"net/http"

	"filmhub/internal/api/dto"
	"filmhub/internal/api/middleware"
	"filmhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService   service.ReviewService
	reactionService service.ReactionService
}

func NewReviewHandler(reviewService service.ReviewService, reactionService service.ReactionService) *ReviewHandler {
	return &ReviewHandler{
		reviewService:   reviewService,
		reactionService: reactionService,
	}
}

// RegisterPublicRoutes registers read-only review routes
func (h *ReviewHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("/:review_id", h.GetByID)
	}
}

// RegisterProtectedRoutes registers routes behind authentication
func (h *ReviewHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.PUT("/:review_id", h.Update)
		reviews.DELETE("/:review_id", h.Delete)

		reviews.PUT("/:review_id/reaction", h.React)
		reviews.DELETE("/:review_id/reaction", h.Unreact)
	}
}

// GetByID retrieves a single review
// GET /api/reviews/:review_id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	review, err := h.reviewService.GetByID(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Update edits the caller's own review
// PUT /api/reviews/:review_id
func (h *ReviewHandler) Update(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), actor, c.Param("review_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete removes the caller's own review
// DELETE /api/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), actor, c.Param("review_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// React places or switches the caller's reaction on a review
// PUT /api/reviews/:review_id/reaction
func (h *ReviewHandler) React(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.reactionService.React(c.Request.Context(), actor, c.Param("review_id"), req.ReactionType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Unreact removes the caller's reaction from a review
// DELETE /api/reviews/:review_id/reaction
func (h *ReviewHandler) Unreact(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resp, err := h.reactionService.Unreact(c.Request.Context(), actor, c.Param("review_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
