package repositories

import (
	"context"

	"storehub/internal/models"
)

// ProductRepository defines the interface for product data access.
// Lookups that find nothing return errs.ErrNotFound.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByProductID(ctx context.Context, productID int64) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	// Create assigns the internal key and the next public product ID.
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, productID int64, changes ProductChanges) (*models.Product, error)
	// Delete removes the product and every inventory row referencing it.
	Delete(ctx context.Context, id string) error
}

// ProductChanges lists the mutable product fields; nil means unchanged.
type ProductChanges struct {
	Name        *string
	Description *string
	Image       *string
}

func (c ProductChanges) columns() map[string]interface{} {
	m := map[string]interface{}{}
	if c.Name != nil {
		m["name"] = *c.Name
	}
	if c.Description != nil {
		m["description"] = *c.Description
	}
	if c.Image != nil {
		m["image"] = *c.Image
	}
	return m
}
