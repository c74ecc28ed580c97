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

const favoriteStoresTable = "user_favorite_stores"

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{db: db}
}

// GetAll retrieves all stores from the database.
func (r *GORMStoreRepository) GetAll(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", err)
	}
	return stores, nil
}

// GetByID retrieves a single store by its internal key.
func (r *GORMStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	return r.findOne(ctx, "id = ?", id)
}

// GetByStoreID retrieves a single store by its public ID.
func (r *GORMStoreRepository) GetByStoreID(ctx context.Context, storeID int64) (*models.Store, error) {
	return r.findOne(ctx, "store_id = ?", storeID)
}

// GetByIDs retrieves every store whose internal key is in ids.
func (r *GORMStoreRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Store, error) {
	var stores []models.Store
	if len(ids) == 0 {
		return stores, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get stores by keys: %w", err)
	}
	return stores, nil
}

func (r *GORMStoreRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).Where(query, args...).First(&store).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &store, nil
}

// Create allocates the next public store ID and inserts the store in one
// transaction.
func (r *GORMStoreRepository) Create(ctx context.Context, store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, models.CounterStoreID)
		if err != nil {
			return err
		}
		store.StoreID = seq
		return tx.Create(store).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create store: %w", database.Translate(err))
	}
	return nil
}

// Update applies changes to the store with the given public ID and returns the
// stored result.
func (r *GORMStoreRepository) Update(ctx context.Context, storeID int64, changes StoreChanges) (*models.Store, error) {
	store, err := r.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if cols := changes.columns(); len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(store).Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("failed to update store: %w", database.Translate(err))
		}
	}
	return r.GetByID(ctx, store.ID)
}

// Delete deletes a store with its inventory rows and favorites.
func (r *GORMStoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", id).Delete(&models.Inventory{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory of store: %w", err)
		}
		if err := tx.Exec("DELETE FROM "+favoriteStoresTable+" WHERE store_ref = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete favorites of store: %w", err)
		}
		res := tx.Delete(&models.Store{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete store: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}
