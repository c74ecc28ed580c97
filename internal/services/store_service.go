package services

import (
	"context"
	"strings"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

func (s *StoreService) GetAllStores(ctx context.Context) ([]models.Store, error) {
	return s.repo.GetAll(ctx)
}

// GetStoreByID retrieves a single store by its public ID.
func (s *StoreService) GetStoreByID(ctx context.Context, storeID int64) (*models.Store, error) {
	store, err := s.repo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	return store, nil
}

// CreateStore creates a new store. The public storeID is assigned by the
// repository.
func (s *StoreService) CreateStore(ctx context.Context, store *models.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return errs.Validation("Store name is required")
	}
	if strings.TrimSpace(store.Address) == "" {
		return errs.Validation("Store address is required")
	}
	return s.repo.Create(ctx, store)
}

func (s *StoreService) UpdateStore(ctx context.Context, storeID int64, changes repositories.StoreChanges) (*models.Store, error) {
	if changes.Name != nil && strings.TrimSpace(*changes.Name) == "" {
		return nil, errs.Validation("Store name cannot be empty")
	}
	if changes.Address != nil && strings.TrimSpace(*changes.Address) == "" {
		return nil, errs.Validation("Store address cannot be empty")
	}
	store, err := s.repo.Update(ctx, storeID, changes)
	if err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	return store, nil
}

// DeleteStore deletes the store with the given public ID, its inventory rows
// and every favorite pointing at it, and returns the deleted store.
func (s *StoreService) DeleteStore(ctx context.Context, storeID int64) (*models.Store, error) {
	store, err := s.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, store.ID); err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	return store, nil
}
