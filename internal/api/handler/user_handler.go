package handler

import (
	"net/http"

	"filmhub/internal/api/dto"
	"filmhub/internal/api/middleware"
	"filmhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService     service.UserService
	userFilmService service.UserFilmService
	reviewService   service.ReviewService
}

func NewUserHandler(
	userService service.UserService,
	userFilmService service.UserFilmService,
	reviewService service.ReviewService,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		userFilmService: userFilmService,
		reviewService:   reviewService,
	}
}

// RegisterPublicRoutes registers profile routes. They run behind OptionalAuth
// so private profiles stay visible to their owner.
func (h *UserHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:username", h.GetProfile)
		users.GET("/:username/films", h.ListFilms)
		users.GET("/:username/reviews", h.ListReviews)
	}
}

// RegisterProtectedRoutes registers account self-management routes
func (h *UserHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	me := router.Group("/me")
	{
		me.PUT("/profile", h.UpdateProfile)
		me.PUT("/password", h.ChangePassword)
		me.DELETE("", h.DeleteAccount)
	}
}

// GetProfile retrieves a user profile with their recent watch list
// GET /api/users/:username
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, _ := middleware.Actor(c)
	p := dto.ParsePagination(c.Query("offset"), c.Query("limit"))

	profile, err := h.userService.GetProfile(c.Request.Context(), actor, c.Param("username"), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListFilms retrieves a user's watch list with pagination
// GET /api/users/:username/films?offset=0&limit=20
func (h *UserHandler) ListFilms(c *gin.Context) {
	actor, _ := middleware.Actor(c)
	p := dto.ParsePagination(c.Query("offset"), c.Query("limit"))

	films, err := h.userFilmService.ListByUser(c.Request.Context(), actor, c.Param("username"), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// ListReviews retrieves a user's reviews with pagination
// GET /api/users/:username/reviews?offset=0&limit=20
func (h *UserHandler) ListReviews(c *gin.Context) {
	p := dto.ParsePagination(c.Query("offset"), c.Query("limit"))

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), c.Param("username"), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// UpdateProfile edits the caller's bio and privacy flag
// PUT /api/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), actor, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// ChangePassword rotates the caller's password
// PUT /api/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), actor, req)
	if err == service.ErrWrongPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// DeleteAccount removes the caller's account and unwinds their contributions
// DELETE /api/me
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
