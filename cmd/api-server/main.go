package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"filmhub/database"
	"filmhub/internal/api/handler"
	"filmhub/internal/api/repository"
	"filmhub/internal/api/service"
	"filmhub/internal/cache"
	"filmhub/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// Optional read-through cache; the service layer works without it.
	var filmCache *cache.FilmCache
	if cfg.RedisURL != "" {
		filmCache, err = cache.NewFilmCache(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			logger.Warn("redis unavailable, running without cache", "error", err)
		}
	}
	defer filmCache.Close()

	store := repository.NewStore(db)
	policy := service.NewAccessPolicy(logger)

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	filmService := service.NewFilmService(store, policy, filmCache)
	genreService := service.NewGenreService(store, policy)
	reviewService := service.NewReviewService(store, policy, filmCache)
	reactionService := service.NewReactionService(store)
	userFilmService := service.NewUserFilmService(store, policy, filmCache)
	userService := service.NewUserService(store, filmCache)

	handlers := handler.Handlers{
		Auth:     handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds())),
		Film:     handler.NewFilmHandler(filmService, reviewService),
		Genre:    handler.NewGenreHandler(genreService),
		Review:   handler.NewReviewHandler(reviewService, reactionService),
		User:     handler.NewUserHandler(userService, userFilmService, reviewService),
		UserFilm: handler.NewUserFilmHandler(userFilmService),
	}

	r := handler.SetupRouter(cfg, authService, handlers)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting HTTP server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
