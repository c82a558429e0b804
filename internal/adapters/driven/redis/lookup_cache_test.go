package redis

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven/mocks"
)

// setupTestLookupCache creates a test Redis client and LookupCache
func setupTestLookupCache(t *testing.T, next *mocks.MockCategoryLookup) (*LookupCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewLookupCache(client, next, slog.Default())

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestDocumentCategoryCacheMiss(t *testing.T) {
	next := mocks.NewMockCategoryLookup()
	next.Set("POR", "Order", "ROP")

	cache, mr, cleanup := setupTestLookupCache(t, next)
	defer cleanup()

	got, err := cache.DocumentCategory(context.Background(), "POR", "Order")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ROP" {
		t.Errorf("expected ROP, got %q", got)
	}
	if next.Calls != 1 {
		t.Errorf("expected 1 lookup call, got %d", next.Calls)
	}

	// Miss populated the cache
	cached, err := mr.Get(categoryPrefix + "POR:Order")
	if err != nil {
		t.Fatalf("expected cache entry: %v", err)
	}
	if cached != "ROP" {
		t.Errorf("expected cached ROP, got %q", cached)
	}
}

func TestDocumentCategoryCacheHit(t *testing.T) {
	next := mocks.NewMockCategoryLookup()
	next.Set("PSR", "Report", "Report")

	cache, _, cleanup := setupTestLookupCache(t, next)
	defer cleanup()

	ctx := context.Background()
	if _, err := cache.DocumentCategory(ctx, "PSR", "Report"); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.DocumentCategory(ctx, "PSR", "Report"); err != nil {
		t.Fatal(err)
	}

	if next.Calls != 1 {
		t.Errorf("expected second read to hit cache, got %d lookup calls", next.Calls)
	}
}

func TestDocumentCategoryNotFoundIsNotCached(t *testing.T) {
	next := mocks.NewMockCategoryLookup()

	cache, mr, cleanup := setupTestLookupCache(t, next)
	defer cleanup()

	_, err := cache.DocumentCategory(context.Background(), "XXX", "Unknown")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if mr.Exists(categoryPrefix + "XXX:Unknown") {
		t.Error("missing mapping must not be cached")
	}
}

func TestDocumentCategoryRedisDownFallsThrough(t *testing.T) {
	next := mocks.NewMockCategoryLookup()
	next.Set("POR", "Order", "ROP")

	cache, mr, cleanup := setupTestLookupCache(t, next)
	defer cleanup()

	mr.Close()

	got, err := cache.DocumentCategory(context.Background(), "POR", "Order")
	if err != nil {
		t.Fatalf("expected fallthrough to lookup, got %v", err)
	}
	if got != "ROP" {
		t.Errorf("expected ROP, got %q", got)
	}
}
