package service

import (
	"strings"

	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"
)

// ReviewService 商品评价服务
type ReviewService struct {
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(repo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{repo: repo, productRepo: productRepo}
}

// ListByProduct 商品评价列表
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(productID)
}

// Create 为商品创建评价
func (s *ReviewService) Create(productID uint, name, description string) (*models.Review, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrReviewInvalid
	}
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	review := models.Review{ProductID: productID, Name: name, Description: description}
	if err := s.repo.Create(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ensureProduct(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}
