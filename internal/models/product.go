package models

import "time"

// Product represents a catalog product. Prices live on Inventory rows.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   int64     `json:"productID" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null;default:''"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
