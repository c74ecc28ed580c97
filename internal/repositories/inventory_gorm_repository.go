package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storehub/internal/database"
	"storehub/internal/errs"
	"storehub/internal/models"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{db: db}
}

// GetAll retrieves all inventory rows.
func (r *GORMInventoryRepository) GetAll(ctx context.Context) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.db.WithContext(ctx).Find(&inventories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all inventories: %w", err)
	}
	return inventories, nil
}

// GetByID retrieves a single inventory row by its internal key.
func (r *GORMInventoryRepository) GetByID(ctx context.Context, id string) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.db.WithContext(ctx).First(&inventory, "id = ?", id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &inventory, nil
}

// Create inserts an inventory row; the unique (store_id, product_id) index
// decides conflicts.
func (r *GORMInventoryRepository) Create(ctx context.Context, inventory *models.Inventory) error {
	if inventory.ID == "" {
		inventory.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(inventory).Error; err != nil {
		return fmt.Errorf("failed to create inventory: %w", database.Translate(err))
	}
	return nil
}

// UpdatePrice replaces the price of a row and returns the stored result.
func (r *GORMInventoryRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*models.Inventory, error) {
	res := r.db.WithContext(ctx).Model(&models.Inventory{}).Where("id = ?", id).Update("price", price)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a row by its internal key.
func (r *GORMInventoryRepository) Delete(ctx context.Context, id string) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inventory, "id = ?", id).Error; err != nil {
			return database.Translate(err)
		}
		if err := tx.Delete(&models.Inventory{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// GetByStore retrieves the rows of one store in storage order.
func (r *GORMInventoryRepository) GetByStore(ctx context.Context, storeRef string) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeRef).Find(&inventories).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory of store: %w", err)
	}
	return inventories, nil
}

// GetByProduct retrieves the rows of one product in storage order.
func (r *GORMInventoryRepository) GetByProduct(ctx context.Context, productRef string) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.db.WithContext(ctx).Where("product_id = ?", productRef).Find(&inventories).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory of product: %w", err)
	}
	return inventories, nil
}
