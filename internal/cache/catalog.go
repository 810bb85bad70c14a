package cache

import (
	"context"
	"time"
)

const (
	collectionListKey = "catalog:collections"
	defaultCatalogTTL = 5 * time.Minute
)

// CatalogCache 商品目录读缓存（集合列表及商品数量）
type CatalogCache struct {
	store *Store
	ttl   time.Duration
}

// NewCatalogCache 创建目录缓存，store 为 nil 时退化为不缓存
func NewCatalogCache(store *Store, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogCache{store: store, ttl: ttl}
}

// GetCollections 读取集合列表缓存
func (c *CatalogCache) GetCollections(ctx context.Context, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	return c.store.GetJSON(ctx, collectionListKey, dest)
}

// SetCollections 写入集合列表缓存
func (c *CatalogCache) SetCollections(ctx context.Context, value interface{}) error {
	if c == nil {
		return nil
	}
	return c.store.SetJSON(ctx, collectionListKey, value, c.ttl)
}

// InvalidateCollections 商品或集合变更后清除缓存
func (c *CatalogCache) InvalidateCollections(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.store.Del(ctx, collectionListKey)
}
