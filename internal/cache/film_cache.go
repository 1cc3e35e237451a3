package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"filmhub/internal/api/dto"
)

// FilmCache is a read-through cache of film detail responses. Every unit of
// work that touches a film's aggregate invalidates its entry, so a cached
// read never outlives a committed aggregate change. All methods are no-ops
// on a nil receiver so the API runs without redis.
type FilmCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFilmCache(redisURL string, ttl time.Duration) (*FilmCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &FilmCache{client: rdb, ttl: ttl}, nil
}

func filmKey(filmID string) string {
	return "film:detail:" + filmID
}

func (c *FilmCache) Get(ctx context.Context, filmID string) (*dto.FilmDetail, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, filmKey(filmID)).Bytes()
	if err != nil {
		return nil, false
	}
	var detail dto.FilmDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, false
	}
	return &detail, true
}

func (c *FilmCache) Set(ctx context.Context, detail *dto.FilmDetail) {
	if c == nil || c.client == nil || detail == nil {
		return
	}
	raw, err := json.Marshal(detail)
	if err != nil {
		return
	}
	// best effort; a failed set only costs a later cache miss
	c.client.Set(ctx, filmKey(detail.ID), raw, c.ttl)
}

func (c *FilmCache) Invalidate(ctx context.Context, filmID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, filmKey(filmID))
}

func (c *FilmCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
