package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"storehub/internal/models"
)

// InventoryRepository defines the interface for store/product join rows.
// Lookups that find nothing return errs.ErrNotFound.
type InventoryRepository interface {
	GetAll(ctx context.Context) ([]models.Inventory, error)
	GetByID(ctx context.Context, id string) (*models.Inventory, error)
	// Create inserts a row. A second row for the same (store, product) pair
	// returns errs.ErrDuplicate.
	Create(ctx context.Context, inventory *models.Inventory) error
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*models.Inventory, error)
	// Delete removes a row and returns it as it was.
	Delete(ctx context.Context, id string) (*models.Inventory, error)
	GetByStore(ctx context.Context, storeRef string) ([]models.Inventory, error)
	GetByProduct(ctx context.Context, productRef string) ([]models.Inventory, error)
}
