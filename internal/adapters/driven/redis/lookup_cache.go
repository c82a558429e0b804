// Package redis provides Redis-backed caching adapters.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CategoryLookup = (*LookupCache)(nil)

const (
	categoryPrefix = "category:"

	// Category reference data changes rarely
	defaultCategoryTTL = 12 * time.Hour
)

// LookupCache wraps a CategoryLookup with a Redis read-through cache.
// Cache failures fall through to the underlying lookup so a Redis outage
// degrades latency, not correctness.
type LookupCache struct {
	client *redis.Client
	next   driven.CategoryLookup
	ttl    time.Duration
	logger *slog.Logger
}

// NewLookupCache creates a new Redis-backed LookupCache
func NewLookupCache(client *redis.Client, next driven.CategoryLookup, logger *slog.Logger) *LookupCache {
	return &LookupCache{
		client: client,
		next:   next,
		ttl:    defaultCategoryTTL,
		logger: logger,
	}
}

// DocumentCategory resolves a category, consulting the cache first
func (c *LookupCache) DocumentCategory(ctx context.Context, formID, classification string) (string, error) {
	key := categoryPrefix + formID + ":" + classification

	category, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return category, nil
	}
	if err != redis.Nil {
		c.logger.Warn("category cache read failed", "key", key, "error", err)
	}

	category, err = c.next.DocumentCategory(ctx, formID, classification)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("lookup category: %w", err)
	}

	if setErr := c.client.Set(ctx, key, category, c.ttl).Err(); setErr != nil {
		c.logger.Warn("category cache write failed", "key", key, "error", setErr)
	}

	return category, nil
}
