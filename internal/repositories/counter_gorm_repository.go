package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storehub/internal/models"
)

// GORMCounterRepository is a GORM implementation of CounterRepository.
type GORMCounterRepository struct {
	db *gorm.DB
}

// NewGORMCounterRepository creates a new instance of GORMCounterRepository.
func NewGORMCounterRepository(db *gorm.DB) *GORMCounterRepository {
	return &GORMCounterRepository{db: db}
}

// Next increments and returns the counter in a single statement.
func (r *GORMCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	return nextSeq(r.db.WithContext(ctx), name)
}

// Current reads the counter without incrementing it.
func (r *GORMCounterRepository) Current(ctx context.Context, name string) (int64, error) {
	var c models.Counter
	err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return c.Seq, nil
}

// nextSeq runs INSERT ... ON CONFLICT DO UPDATE SET seq = seq + 1 RETURNING seq
// on tx. Inside a transaction the increment is rolled back with it.
func nextSeq(tx *gorm.DB, name string) (int64, error) {
	c := models.Counter{Name: name, Seq: 1}
	err := tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"seq": gorm.Expr("counters.seq + 1")}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "seq"}}},
	).Create(&c).Error
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return c.Seq, nil
}
