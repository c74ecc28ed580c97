package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are emitted as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Inventory pairs one store with one product at a store-specific price.
// A product appears at most once per store.
type Inventory struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreRef   string          `json:"store" gorm:"column:store_id;type:varchar(36);not null;index;uniqueIndex:idx_inventory_store_product"`
	ProductRef string          `json:"product" gorm:"column:product_id;type:varchar(36);not null;index;uniqueIndex:idx_inventory_store_product"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;check:chk_inventories_price,price >= 0"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// StoreProduct is a product as carried by one store.
type StoreProduct struct {
	ProductID   int64           `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       *string         `json:"image"`
	Price       decimal.Decimal `json:"price"`
	StoreID     int64           `json:"storeID"`
	InventoryID string          `json:"inventoryId"`
}

// ProductStore is a store carrying one product.
type ProductStore struct {
	StoreID     int64           `json:"storeID"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Location    GeoPoint        `json:"location"`
	StoreImage  *string         `json:"storeImage"`
	Price       decimal.Decimal `json:"price"`
	InventoryID string          `json:"inventoryId"`
}
