package repositories

import (
	"context"

	"storehub/internal/models"
)

// UserRepository defines the interface for user data access.
// Lookups that find nothing return errs.ErrNotFound.
type UserRepository interface {
	// Create assigns the internal key and the next public user ID. A taken
	// email returns errs.ErrDuplicate.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, changes UserChanges) (*models.User, error)

	AddFavoriteStore(ctx context.Context, userID, storeID string) error
	RemoveFavoriteStore(ctx context.Context, userID, storeID string) error
	FavoriteStores(ctx context.Context, userID string) ([]models.Store, error)
}

// UserChanges lists the mutable user fields; nil means unchanged.
type UserChanges struct {
	Name         *string
	Gender       *models.Gender
	Email        *string
	Level        *int
	Password     *string // already hashed
	ImageProfile *string
}

func (c UserChanges) columns() map[string]interface{} {
	m := map[string]interface{}{}
	if c.Name != nil {
		m["name"] = *c.Name
	}
	if c.Gender != nil {
		m["gender"] = *c.Gender
	}
	if c.Email != nil {
		m["email"] = *c.Email
	}
	if c.Level != nil {
		m["level"] = *c.Level
	}
	if c.Password != nil {
		m["password"] = *c.Password
	}
	if c.ImageProfile != nil {
		m["image_profile"] = *c.ImageProfile
	}
	return m
}
