package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Routing keys of inventory events.
const (
	EventInventoryCreated = "inventory.created"
	EventInventoryUpdated = "inventory.updated"
	EventInventoryDeleted = "inventory.deleted"
)

// EventPublisher publishes domain events. Services skip publishing when it
// is nil.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// InventoryEvent is the body of every inventory event.
type InventoryEvent struct {
	Type        string          `json:"type"`
	InventoryID string          `json:"inventoryId"`
	StoreRef    string          `json:"store"`
	ProductRef  string          `json:"product"`
	Price       decimal.Decimal `json:"price"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// LogInventoryEvents returns a consumer handler that decodes inventory events
// and writes them to log. Undecodable bodies are reported as errors.
func LogInventoryEvents(log *zap.Logger) func(routingKey string, body []byte) error {
	return func(routingKey string, body []byte) error {
		var evt InventoryEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			return fmt.Errorf("failed to decode %s event: %w", routingKey, err)
		}
		log.Info("inventory event",
			zap.String("routing_key", routingKey),
			zap.String("inventory_id", evt.InventoryID),
			zap.String("store", evt.StoreRef),
			zap.String("product", evt.ProductRef),
			zap.String("price", evt.Price.String()),
			zap.Time("occurred_at", evt.OccurredAt))
		return nil
	}
}
