package service

import (
	"context"
	"errors"
	"strings"

	"github.com/storefront-api/internal/cache"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"gorm.io/gorm"
)

// CollectionService 商品集合服务
type CollectionService struct {
	db           *gorm.DB
	repo         repository.CollectionRepository
	catalogCache *cache.CatalogCache
}

// NewCollectionService 创建集合服务
func NewCollectionService(db *gorm.DB, repo repository.CollectionRepository, catalogCache *cache.CatalogCache) *CollectionService {
	return &CollectionService{db: db, repo: repo, catalogCache: catalogCache}
}

// List 集合列表（含 products_count），优先读缓存
func (s *CollectionService) List(ctx context.Context) ([]repository.CollectionWithCount, error) {
	var cached []repository.CollectionWithCount
	hit, err := s.catalogCache.GetCollections(ctx, &cached)
	if err != nil {
		logger.FromContext(ctx).Warnw("catalog_cache_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	rows, err := s.repo.ListWithProductCount()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.CollectionWithCount{}
	}
	if err := s.catalogCache.SetCollections(ctx, rows); err != nil {
		logger.FromContext(ctx).Warnw("catalog_cache_write_failed", "error", err)
	}
	return rows, nil
}

// Create 创建集合
func (s *CollectionService) Create(ctx context.Context, title string) (*repository.CollectionWithCount, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 255 {
		return nil, ErrCollectionTitleEmpty
	}
	collection := models.Collection{Title: title}
	if err := s.repo.Create(&collection); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &repository.CollectionWithCount{ID: collection.ID, Title: collection.Title}, nil
}

// Delete 删除集合，仍有商品时拒绝；检查与删除在同一事务内
func (s *CollectionService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		collection, err := repo.LockByID(id)
		if err != nil {
			return err
		}
		if collection == nil {
			return ErrCollectionNotFound
		}
		count, err := repo.CountProducts(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCollectionInUse
		}
		return repo.Delete(id)
	})
	if err != nil {
		if errors.Is(err, ErrCollectionNotFound) || errors.Is(err, ErrCollectionInUse) {
			return err
		}
		logger.FromContext(ctx).Errorw("collection_delete_failed", "collection_id", id, "error", err)
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CollectionService) invalidate(ctx context.Context) {
	if err := s.catalogCache.InvalidateCollections(ctx); err != nil {
		logger.FromContext(ctx).Warnw("catalog_cache_invalidate_failed", "error", err)
	}
}
