// Package cache is an optional Redis read-through layer for the public read
// paths (project listing, hero). Writers invalidate; the store stays the
// source of truth and a cache failure only means a fresh read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

const (
	projectsKey = "content:projects"
	heroKey     = "content:hero"
)

// Cache wraps a Redis client. A nil *Cache is valid and disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache with the given TTL. TTL <= 0 defaults to one minute.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

// Projects returns the cached listing, or ok=false on miss or any Redis
// error.
func (c *Cache) Projects(ctx context.Context) ([]domain.Project, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, projectsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var out []domain.Project
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

// SetProjects stores the listing. Failures are ignored; the next read just
// misses.
func (c *Cache) SetProjects(ctx context.Context, projects []domain.Project) {
	if c == nil {
		return
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return
	}
	c.client.Set(ctx, projectsKey, data, c.ttl)
}

// Hero returns the cached hero document, or ok=false on miss.
func (c *Cache) Hero(ctx context.Context) (*domain.Hero, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, heroKey).Bytes()
	if err != nil {
		return nil, false
	}
	var h domain.Hero
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, false
	}
	return &h, true
}

// SetHero stores the hero document.
func (c *Cache) SetHero(ctx context.Context, h *domain.Hero) {
	if c == nil || h == nil {
		return
	}
	data, err := json.Marshal(h)
	if err != nil {
		return
	}
	c.client.Set(ctx, heroKey, data, c.ttl)
}

// InvalidateProjects drops the cached listing after a project mutation.
func (c *Cache) InvalidateProjects(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, projectsKey)
}

// InvalidateHero drops the cached hero after an upsert.
func (c *Cache) InvalidateHero(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, heroKey)
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return errors.New("cache disabled")
	}
	return c.client.Ping(ctx).Err()
}
