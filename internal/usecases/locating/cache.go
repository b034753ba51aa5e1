// Package locating serves store/location metadata from an in-memory cache
// over the location repository. The cache is refreshed by a background
// scheduler and falls through to the repository on a miss, so a location
// added between refreshes is still resolvable.
package locating

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/infrastructure/repository"
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

type Provider interface {
	LocationByToken(ctx context.Context, token string) (*domain.Location, error)
	Locations(ctx context.Context) ([]*domain.Location, error)
	Refresh(ctx context.Context) error
}

type Cache struct {
	repo repository.LocationRepository

	mu        sync.RWMutex
	byToken   map[string]*domain.Location
	ordered   []*domain.Location
	loadedAt  time.Time
	everFresh bool
}

func NewCache(repo repository.LocationRepository) *Cache {
	return &Cache{
		repo:    repo,
		byToken: make(map[string]*domain.Location),
	}
}

// LocationByToken resolves a location, preferring the cache and falling
// through to the repository on a miss. Unknown tokens yield (nil, nil).
func (c *Cache) LocationByToken(ctx context.Context, token string) (*domain.Location, error) {
	c.mu.RLock()
	cached, ok := c.byToken[token]
	c.mu.RUnlock()

	if ok {
		return cached, nil
	}

	location, err := c.repo.GetByToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "resolving location by token")
	}
	if location == nil || !location.Active {
		return nil, nil
	}

	c.mu.Lock()
	c.byToken[token] = location
	c.mu.Unlock()

	return location, nil
}

// Locations lists the active locations, loading the cache on first use.
func (c *Cache) Locations(ctx context.Context) ([]*domain.Location, error) {
	c.mu.RLock()
	fresh := c.everFresh
	ordered := c.ordered
	c.mu.RUnlock()

	if fresh {
		return ordered, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ordered, nil
}

// Refresh reloads the cache from the repository, replacing the previous
// snapshot atomically.
func (c *Cache) Refresh(ctx context.Context) error {
	locations, err := c.repo.ListActive()
	if err != nil {
		return errors.Wrap(err, "refreshing location cache")
	}

	byToken := make(map[string]*domain.Location, len(locations))
	for _, location := range locations {
		byToken[location.Token] = location
	}

	c.mu.Lock()
	c.byToken = byToken
	c.ordered = locations
	c.loadedAt = time.Now()
	c.everFresh = true
	c.mu.Unlock()

	log.L.WithField("locations", len(locations)).Debug("locating: cache refreshed")

	return nil
}
