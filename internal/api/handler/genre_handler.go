package handler

import (
	"net/http"
	"strconv"

	"filmhub/internal/api/dto"
	"filmhub/internal/api/middleware"
	"filmhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService service.GenreService
}

func NewGenreHandler(genreService service.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// RegisterPublicRoutes registers read-only genre routes
func (h *GenreHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres")
	{
		genres.GET("", h.List)
		genres.GET("/:genre_id", h.GetByID)
	}
}

// RegisterProtectedRoutes registers admin-only genre routes
func (h *GenreHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres", middleware.RequireAdmin())
	{
		genres.POST("", h.Create)
		genres.PUT("/:genre_id", h.Rename)
	}
}

// List retrieves all genres
// GET /api/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genreService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genres)
}

// GetByID retrieves a single genre
// GET /api/genres/:genre_id
func (h *GenreHandler) GetByID(c *gin.Context) {
	genreID, err := strconv.ParseInt(c.Param("genre_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	genre, err := h.genreService.GetByID(c.Request.Context(), genreID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// Create adds a genre (admin only)
// POST /api/genres
func (h *GenreHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.genreService.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, genre)
}

// Rename changes a genre's name (admin only)
// PUT /api/genres/:genre_id
func (h *GenreHandler) Rename(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	genreID, err := strconv.ParseInt(c.Param("genre_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	var req dto.RenameGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.genreService.Rename(c.Request.Context(), actor, genreID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}
