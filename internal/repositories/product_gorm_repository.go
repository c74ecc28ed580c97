package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storehub/internal/database"
	"storehub/internal/errs"
	"storehub/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its internal key.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.findOne(ctx, "id = ?", id)
}

// GetByProductID retrieves a single product by its public ID.
func (r *GORMProductRepository) GetByProductID(ctx context.Context, productID int64) (*models.Product, error) {
	return r.findOne(ctx, "product_id = ?", productID)
}

// GetByIDs retrieves every product whose internal key is in ids.
func (r *GORMProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by keys: %w", err)
	}
	return products, nil
}

func (r *GORMProductRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where(query, args...).First(&product).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &product, nil
}

// Create allocates the next public product ID and inserts the product in one
// transaction.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, models.CounterProductID)
		if err != nil {
			return err
		}
		product.ProductID = seq
		return tx.Create(product).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", database.Translate(err))
	}
	return nil
}

// Update applies changes to the product with the given public ID and returns
// the stored result.
func (r *GORMProductRepository) Update(ctx context.Context, productID int64, changes ProductChanges) (*models.Product, error) {
	product, err := r.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if cols := changes.columns(); len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(product).Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", database.Translate(err))
		}
	}
	return r.GetByID(ctx, product.ID)
}

// Delete deletes a product and its inventory rows.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Inventory{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory of product: %w", err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}
