package services

import (
	"context"
	"strings"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its public ID.
func (s *ProductService) GetProductByID(ctx context.Context, productID int64) (*models.Product, error) {
	product, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	return product, nil
}

// CreateProduct creates a new product. The public productID is assigned by
// the repository.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return errs.Validation("Product name is required")
	}
	return s.repo.Create(ctx, product)
}

// UpdateProduct applies changes to the product with the given public ID.
func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, changes repositories.ProductChanges) (*models.Product, error) {
	if changes.Name != nil && strings.TrimSpace(*changes.Name) == "" {
		return nil, errs.Validation("Product name cannot be empty")
	}
	product, err := s.repo.Update(ctx, productID, changes)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	return product, nil
}

// DeleteProduct deletes the product with the given public ID together with
// its inventory rows and returns the deleted product.
func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) (*models.Product, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, product.ID); err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	return product, nil
}
