package handler

import (
	"net/http"

	"filmhub/internal/api/dto"
	"filmhub/internal/api/middleware"
	"filmhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type UserFilmHandler struct {
	userFilmService service.UserFilmService
}

func NewUserFilmHandler(userFilmService service.UserFilmService) *UserFilmHandler {
	return &UserFilmHandler{userFilmService: userFilmService}
}

// RegisterProtectedRoutes registers the caller's watch-list routes
func (h *UserFilmHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	list := router.Group("/me/films")
	{
		list.POST("/:film_id", h.Add)
		list.PUT("/:film_id", h.Update)
		list.DELETE("/:film_id", h.Remove)
	}
}

// Add puts a film onto the caller's watch list
// POST /api/me/films/:film_id
func (h *UserFilmHandler) Add(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.AddUserFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.userFilmService.Add(c.Request.Context(), actor, c.Param("film_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Update changes status or progress of a watch-list entry
// PUT /api/me/films/:film_id
func (h *UserFilmHandler) Update(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateUserFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.userFilmService.Update(c.Request.Context(), actor, c.Param("film_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Remove drops a film from the caller's watch list, cascading any review
// DELETE /api/me/films/:film_id
func (h *UserFilmHandler) Remove(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.userFilmService.Remove(c.Request.Context(), actor, c.Param("film_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Film removed from list"})
}
