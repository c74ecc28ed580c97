package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"storehub/internal/models"
	"storehub/internal/repositories"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

var _ repositories.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, changes repositories.UserChanges) (*models.User, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AddFavoriteStore(ctx context.Context, userID, storeID string) error {
	return m.Called(ctx, userID, storeID).Error(0)
}

func (m *MockUserRepository) RemoveFavoriteStore(ctx context.Context, userID, storeID string) error {
	return m.Called(ctx, userID, storeID).Error(0)
}

func (m *MockUserRepository) FavoriteStores(ctx context.Context, userID string) ([]models.Store, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByProductID(ctx context.Context, productID int64) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, productID int64, changes repositories.ProductChanges) (*models.Product, error) {
	args := m.Called(ctx, productID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetAll(ctx context.Context) ([]models.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByStoreID(ctx context.Context, storeID int64) (*models.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Store, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *models.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, storeID int64, changes repositories.StoreChanges) (*models.Store, error) {
	args := m.Called(ctx, storeID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockInventoryRepository is a mock implementation of repositories.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetAll(ctx context.Context) ([]models.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id string) (*models.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, inventory *models.Inventory) error {
	return m.Called(ctx, inventory).Error(0)
}

func (m *MockInventoryRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*models.Inventory, error) {
	args := m.Called(ctx, id, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id string) (*models.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetByStore(ctx context.Context, storeRef string) ([]models.Inventory, error) {
	args := m.Called(ctx, storeRef)
	return args.Get(0).([]models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetByProduct(ctx context.Context, productRef string) ([]models.Inventory, error) {
	args := m.Called(ctx, productRef)
	return args.Get(0).([]models.Inventory), args.Error(1)
}

// MockCounterRepository is a mock implementation of repositories.CounterRepository
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterRepository) Current(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}
