package handler

import (
	"net/http"

	"filmhub/internal/api/middleware"
	"filmhub/internal/api/service"
	"filmhub/internal/config"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth     *AuthHandler
	Film     *FilmHandler
	Genre    *GenreHandler
	Review   *ReviewHandler
	User     *UserHandler
	UserFilm *UserFilmHandler
}

// SetupRouter assembles the full route tree: public reads behind OptionalAuth,
// writes behind AuthMiddleware, everything behind the rate limiter.
func SetupRouter(cfg *config.Config, authService service.AuthService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	public := api.Group("", middleware.OptionalAuth(authService))
	{
		h.Auth.RegisterRoutes(public)
		h.Film.RegisterPublicRoutes(public)
		h.Genre.RegisterPublicRoutes(public)
		h.Review.RegisterPublicRoutes(public)
		h.User.RegisterPublicRoutes(public)
	}

	protected := api.Group("", middleware.AuthMiddleware(authService))
	{
		h.Film.RegisterProtectedRoutes(protected)
		h.Genre.RegisterProtectedRoutes(protected)
		h.Review.RegisterProtectedRoutes(protected)
		h.User.RegisterProtectedRoutes(protected)
		h.UserFilm.RegisterProtectedRoutes(protected)
	}

	return r
}
