package handler

import (
	"net/http"

	"filmhub/internal/api/dto"
	"filmhub/internal/api/middleware"
	"filmhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	filmService   service.FilmService
	reviewService service.ReviewService
}

func NewFilmHandler(filmService service.FilmService, reviewService service.ReviewService) *FilmHandler {
	return &FilmHandler{
		filmService:   filmService,
		reviewService: reviewService,
	}
}

// RegisterPublicRoutes registers read-only film routes
func (h *FilmHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	{
		films.GET("", h.List)
		films.GET("/:film_id", h.GetByID)
		films.GET("/:film_id/reviews", h.ListReviews)
	}
}

// RegisterProtectedRoutes registers routes behind authentication
func (h *FilmHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	{
		// Catalog writes are admin-only; the service enforces the role,
		// the middleware just rejects early.
		films.POST("", middleware.RequireAdmin(), h.Create)
		films.PUT("/:film_id", middleware.RequireAdmin(), h.Update)
		films.DELETE("/:film_id", middleware.RequireAdmin(), h.Delete)

		films.POST("/:film_id/reviews", h.CreateReview)
	}
}

// List retrieves the film catalog with pagination
// GET /api/films?offset=0&limit=20
func (h *FilmHandler) List(c *gin.Context) {
	p := dto.ParsePagination(c.Query("offset"), c.Query("limit"))

	films, err := h.filmService.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// GetByID retrieves a single film with genres and images
// GET /api/films/:film_id
func (h *FilmHandler) GetByID(c *gin.Context) {
	film, err := h.filmService.GetByID(c.Request.Context(), c.Param("film_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, film)
}

// Create adds a film to the catalog (admin only)
// POST /api/films
func (h *FilmHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.filmService.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, film)
}

// Update edits film metadata (admin only); never touches the rating aggregate
// PUT /api/films/:film_id
func (h *FilmHandler) Update(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.filmService.Update(c.Request.Context(), actor, c.Param("film_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, film)
}

// Delete removes a film and everything hanging off it (admin only)
// DELETE /api/films/:film_id
func (h *FilmHandler) Delete(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.filmService.Delete(c.Request.Context(), actor, c.Param("film_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Film deleted successfully"})
}

// ListReviews retrieves reviews for a film with pagination
// GET /api/films/:film_id/reviews?offset=0&limit=20
func (h *FilmHandler) ListReviews(c *gin.Context) {
	p := dto.ParsePagination(c.Query("offset"), c.Query("limit"))

	reviews, err := h.reviewService.ListByFilm(c.Request.Context(), c.Param("film_id"), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview posts the caller's review of a film
// POST /api/films/:film_id/reviews
func (h *FilmHandler) CreateReview(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), actor, c.Param("film_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
