package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
)

var inventoryConflicts = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "inventory_conflicts_total",
	Help: "Inventory creations rejected because the product is already in the store",
})

func init() { prometheus.MustRegister(inventoryConflicts) }

// InventoryService manages store/product join rows and answers the
// store->products and product->stores queries.
type InventoryService struct {
	inventories repositories.InventoryRepository
	stores      repositories.StoreRepository
	products    repositories.ProductRepository
	events      EventPublisher
	log         *zap.Logger
}

// NewInventoryService creates a new InventoryService. events may be nil.
func NewInventoryService(
	inventories repositories.InventoryRepository,
	stores repositories.StoreRepository,
	products repositories.ProductRepository,
	events EventPublisher,
	log *zap.Logger,
) *InventoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InventoryService{
		inventories: inventories,
		stores:      stores,
		products:    products,
		events:      events,
		log:         log,
	}
}

// GetAllInventories retrieves every join row.
func (s *InventoryService) GetAllInventories(ctx context.Context) ([]models.Inventory, error) {
	return s.inventories.GetAll(ctx)
}

// GetInventoryByID retrieves one join row by its internal key.
func (s *InventoryService) GetInventoryByID(ctx context.Context, id string) (*models.Inventory, error) {
	inv, err := s.inventories.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Inventory entry not found")
	}
	return inv, nil
}

// CreateInventory puts the product with the given public ID into the store
// with the given public ID at price. Both are resolved before any write.
func (s *InventoryService) CreateInventory(ctx context.Context, storeID, productID int64, price decimal.Decimal) (*models.Inventory, error) {
	if price.IsNegative() {
		return nil, errs.Validation("Price must be a non-negative number")
	}
	store, err := s.stores.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	product, err := s.products.GetByProductID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}

	inv := &models.Inventory{
		StoreRef:   store.ID,
		ProductRef: product.ID,
		Price:      price,
	}
	if err := s.inventories.Create(ctx, inv); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			inventoryConflicts.Inc()
			return nil, errs.Wrap(errs.KindConflict, "This product already exists in the store", err)
		}
		return nil, err
	}
	s.publish(ctx, EventInventoryCreated, inv)
	return inv, nil
}

// UpdateInventory replaces the price of a join row.
func (s *InventoryService) UpdateInventory(ctx context.Context, id string, price decimal.Decimal) (*models.Inventory, error) {
	if price.IsNegative() {
		return nil, errs.Validation("Price must be a non-negative number")
	}
	inv, err := s.inventories.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, notFoundAs(err, "Inventory entry not found")
	}
	s.publish(ctx, EventInventoryUpdated, inv)
	return inv, nil
}

// DeleteInventory removes a join row and returns it.
func (s *InventoryService) DeleteInventory(ctx context.Context, id string) (*models.Inventory, error) {
	inv, err := s.inventories.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Inventory entry not found")
	}
	s.publish(ctx, EventInventoryDeleted, inv)
	return inv, nil
}

// GetStoreProducts lists the products carried by a store, each with the
// store's price for it. Order follows storage order.
func (s *InventoryService) GetStoreProducts(ctx context.Context, storeID int64) ([]models.StoreProduct, error) {
	store, err := s.stores.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	rows, err := s.inventories.GetByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.ProductRef)
	}
	products, err := s.products.GetByIDs(ctx, keys)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]models.Product, len(products))
	for _, p := range products {
		byKey[p.ID] = p
	}

	out := make([]models.StoreProduct, 0, len(rows))
	for _, row := range rows {
		p, ok := byKey[row.ProductRef]
		if !ok {
			s.log.Warn("inventory row references missing product",
				zap.String("inventory_id", row.ID), zap.String("product", row.ProductRef))
			continue
		}
		out = append(out, models.StoreProduct{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Price:       row.Price,
			StoreID:     store.StoreID,
			InventoryID: row.ID,
		})
	}
	return out, nil
}

// GetProductStores lists the stores carrying a product, each with its price
// for it. Order follows storage order.
func (s *InventoryService) GetProductStores(ctx context.Context, productID int64) ([]models.ProductStore, error) {
	product, err := s.products.GetByProductID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	rows, err := s.inventories.GetByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.StoreRef)
	}
	stores, err := s.stores.GetByIDs(ctx, keys)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]models.Store, len(stores))
	for _, st := range stores {
		byKey[st.ID] = st
	}

	out := make([]models.ProductStore, 0, len(rows))
	for _, row := range rows {
		st, ok := byKey[row.StoreRef]
		if !ok {
			s.log.Warn("inventory row references missing store",
				zap.String("inventory_id", row.ID), zap.String("store", row.StoreRef))
			continue
		}
		out = append(out, models.ProductStore{
			StoreID:     st.StoreID,
			Name:        st.Name,
			Address:     st.Address,
			Location:    st.Location,
			StoreImage:  st.StoreImage,
			Price:       row.Price,
			InventoryID: row.ID,
		})
	}
	return out, nil
}

func (s *InventoryService) publish(ctx context.Context, key string, inv *models.Inventory) {
	if s.events == nil {
		return
	}
	evt := InventoryEvent{
		Type:        key,
		InventoryID: inv.ID,
		StoreRef:    inv.StoreRef,
		ProductRef:  inv.ProductRef,
		Price:       inv.Price,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, key, evt); err != nil {
		s.log.Warn("failed to publish inventory event",
			zap.String("event", key), zap.String("inventory_id", inv.ID), zap.Error(err))
	}
}
