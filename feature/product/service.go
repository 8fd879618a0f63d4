package product

import (
	"context"
	"errors"

	"products-api/feature/product/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors surfaced to the handler layer.
var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidPrice = errors.New("price must be non-negative")
)

// Pagination bounds for product listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service handles product CRUD operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new product service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create persists a new product. Products created through this path have no
// external ID; only the sync job sets one.
func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Product, error) {
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Product created", zap.Uint("id", product.ID), zap.String("name", product.Name))
	return &product, nil
}

// Get returns the product with the given local ID.
func (s *Service) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns a filtered, paginated product listing.
func (s *Service) List(ctx context.Context, params models.ListParams) (*models.ListResponse, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}

	query := s.db.WithContext(ctx).Model(&models.Product{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var products []models.Product
	offset := (params.Page - 1) * params.PageSize
	if err := query.Order("id").Offset(offset).Limit(params.PageSize).Find(&products).Error; err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total-1)/int64(params.PageSize)) + 1
	}

	return &models.ListResponse{
		Products:   products,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Update applies the provided fields to an existing product.
func (s *Service) Update(ctx context.Context, id uint, req models.UpdateRequest) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product. This is the only deletion path; the sync job
// never deletes local records.
func (s *Service) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Info("Product deleted", zap.Uint("id", id))
	return nil
}
