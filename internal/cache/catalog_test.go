package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedCollection struct {
	ID            uint  `json:"id"`
	ProductsCount int64 `json:"products_count"`
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStoreWithClient(client, "test"), mr
}

func TestCatalogCacheRoundTripAndInvalidate(t *testing.T) {
	store, mr := newTestStore(t)
	catalog := NewCatalogCache(store, time.Minute)
	ctx := context.Background()

	var miss []cachedCollection
	hit, err := catalog.GetCollections(ctx, &miss)
	if err != nil || hit {
		t.Fatalf("expected cold cache, hit=%v err=%v", hit, err)
	}

	if err := catalog.SetCollections(ctx, []cachedCollection{{ID: 1, ProductsCount: 3}}); err != nil {
		t.Fatalf("set collections failed: %v", err)
	}
	if !mr.Exists("test:catalog:collections") {
		t.Fatalf("expected prefixed key in redis, keys=%v", mr.Keys())
	}
	if ttl := mr.TTL("test:catalog:collections"); ttl != time.Minute {
		t.Fatalf("unexpected ttl: %v", ttl)
	}

	var got []cachedCollection
	hit, err = catalog.GetCollections(ctx, &got)
	if err != nil || !hit {
		t.Fatalf("expected cache hit, hit=%v err=%v", hit, err)
	}
	if len(got) != 1 || got[0].ProductsCount != 3 {
		t.Fatalf("unexpected cached value: %+v", got)
	}

	if err := catalog.InvalidateCollections(ctx); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	hit, _ = catalog.GetCollections(ctx, &got)
	if hit {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	catalog := NewCatalogCache(store, 0)
	ctx := context.Background()
	if err := catalog.SetCollections(ctx, []int{1}); err != nil {
		t.Fatalf("nil store set should be noop, got %v", err)
	}
	var dest []int
	hit, err := catalog.GetCollections(ctx, &dest)
	if err != nil || hit {
		t.Fatalf("nil store get should miss, hit=%v err=%v", hit, err)
	}
	if store.Enabled() {
		t.Fatalf("nil store should be disabled")
	}
}
