package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storehub/internal/database"
	"storehub/internal/errs"
	"storehub/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create allocates the next public user ID and inserts the user in one
// transaction.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, models.CounterUserID)
		if err != nil {
			return err
		}
		user.UserID = seq
		return tx.Omit(clause.Associations).Create(user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", database.Translate(err))
	}
	return nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// GetByID retrieves a user by their internal key from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *GORMUserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &user, nil
}

// Update applies changes to the user and returns the stored result.
func (r *GORMUserRepository) Update(ctx context.Context, id string, changes UserChanges) (*models.User, error) {
	cols := changes.columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update user: %w", database.Translate(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, errs.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// AddFavoriteStore links the store to the user. Adding an existing favorite
// is a no-op.
func (r *GORMUserRepository) AddFavoriteStore(ctx context.Context, userID, storeID string) error {
	err := r.db.WithContext(ctx).Table(favoriteStoresTable).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{"user_ref": userID, "store_ref": storeID}).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite store: %w", err)
	}
	return nil
}

// RemoveFavoriteStore unlinks the store from the user. Removing a store that
// is not a favorite is a no-op.
func (r *GORMUserRepository) RemoveFavoriteStore(ctx context.Context, userID, storeID string) error {
	err := r.db.WithContext(ctx).
		Exec("DELETE FROM "+favoriteStoresTable+" WHERE user_ref = ? AND store_ref = ?", userID, storeID).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite store: %w", err)
	}
	return nil
}

// FavoriteStores returns the stores the user marked as favorite.
func (r *GORMUserRepository) FavoriteStores(ctx context.Context, userID string) ([]models.Store, error) {
	stores := []models.Store{}
	err := r.db.WithContext(ctx).Model(&models.User{ID: userID}).Association("FavoriteStores").Find(&stores)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite stores: %w", err)
	}
	return stores, nil
}
