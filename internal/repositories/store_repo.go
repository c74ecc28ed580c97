package repositories

import (
	"context"

	"storehub/internal/models"
)

// StoreRepository defines the interface for store data access.
// Lookups that find nothing return errs.ErrNotFound.
type StoreRepository interface {
	GetAll(ctx context.Context) ([]models.Store, error)
	GetByID(ctx context.Context, id string) (*models.Store, error)
	GetByStoreID(ctx context.Context, storeID int64) (*models.Store, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Store, error)
	// Create assigns the internal key and the next public store ID.
	Create(ctx context.Context, store *models.Store) error
	Update(ctx context.Context, storeID int64, changes StoreChanges) (*models.Store, error)
	// Delete removes the store, its inventory rows and any favorites of it.
	Delete(ctx context.Context, id string) error
}

// StoreChanges lists the mutable store fields; nil means unchanged.
type StoreChanges struct {
	Name       *string
	Address    *string
	Location   *models.GeoPoint
	StoreImage *string
}

func (c StoreChanges) columns() map[string]interface{} {
	m := map[string]interface{}{}
	if c.Name != nil {
		m["name"] = *c.Name
	}
	if c.Address != nil {
		m["address"] = *c.Address
	}
	if c.Location != nil {
		m["location_longitude"] = c.Location.Longitude
		m["location_latitude"] = c.Location.Latitude
	}
	if c.StoreImage != nil {
		m["store_image"] = *c.StoreImage
	}
	return m
}
