package models

// Counter names, one per entity kind with a public ID.
const (
	CounterUserID    = "userID"
	CounterProductID = "productID"
	CounterStoreID   = "storeID"
)

// Counter holds the last public ID issued for an entity kind.
type Counter struct {
	Name string `gorm:"primaryKey;type:varchar(32)"`
	Seq  int64  `gorm:"not null;default:0"`
}

// All returns every model managed by the schema migration.
func All() []interface{} {
	return []interface{}{&Counter{}, &User{}, &Product{}, &Store{}, &Inventory{}}
}
