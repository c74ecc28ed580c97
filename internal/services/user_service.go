package services

import (
	"context"
	"errors"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/security"
)

// UserUpdate holds the optional fields of a profile update. Password is plain
// text and gets hashed before it is stored.
type UserUpdate struct {
	Name     *string
	Gender   *models.Gender
	Email    *string
	Level    *int
	Password *string
}

// UserService handles profile and favorite-store operations.
type UserService struct {
	users    repositories.UserRepository
	stores   repositories.StoreRepository
	counters repositories.CounterRepository
}

// NewUserService creates a new UserService.
func NewUserService(users repositories.UserRepository, stores repositories.StoreRepository, counters repositories.CounterRepository) *UserService {
	return &UserService{users: users, stores: stores, counters: counters}
}

// GetProfile reloads the user identified by its internal key.
func (s *UserService) GetProfile(ctx context.Context, userKey string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userKey)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

// UpdateUser applies in to the account with public ID userID. Callers may only
// update their own account.
func (s *UserService) UpdateUser(ctx context.Context, caller *models.User, userID int64, in UserUpdate) (*models.User, error) {
	if caller == nil || caller.UserID != userID {
		return nil, errs.Forbidden("You can only update your own account")
	}

	changes := repositories.UserChanges{
		Name:   in.Name,
		Gender: in.Gender,
		Email:  in.Email,
		Level:  in.Level,
	}
	if in.Password != nil {
		hashed, err := security.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		changes.Password = &hashed
	}

	user, err := s.users.Update(ctx, caller.ID, changes)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return nil, errs.Wrap(errs.KindConflict, "Email already exists", err)
		}
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

// SetProfileImage stores the public path of the user's uploaded image.
func (s *UserService) SetProfileImage(ctx context.Context, userKey, path string) (*models.User, error) {
	user, err := s.users.Update(ctx, userKey, repositories.UserChanges{ImageProfile: &path})
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

// ProfileImage returns the stored image path of the user.
func (s *UserService) ProfileImage(ctx context.Context, userKey string) (string, error) {
	user, err := s.GetProfile(ctx, userKey)
	if err != nil {
		return "", err
	}
	if user.ImageProfile == nil || *user.ImageProfile == "" {
		return "", errs.NotFound("Profile image not found")
	}
	return *user.ImageProfile, nil
}

// NextUserID reports the public ID the next signup will receive.
func (s *UserService) NextUserID(ctx context.Context) (int64, error) {
	cur, err := s.counters.Current(ctx, models.CounterUserID)
	if err != nil {
		return 0, err
	}
	return cur + 1, nil
}

// AddFavoriteStore marks the store with public ID storeID as a favorite of
// the user and returns the resulting favorites. Adding twice is a no-op.
func (s *UserService) AddFavoriteStore(ctx context.Context, userKey string, storeID int64) ([]models.Store, error) {
	store, err := s.stores.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	if err := s.users.AddFavoriteStore(ctx, userKey, store.ID); err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return s.FavoriteStores(ctx, userKey)
}

// RemoveFavoriteStore drops the store from the user's favorites and returns
// the remaining ones.
func (s *UserService) RemoveFavoriteStore(ctx context.Context, userKey string, storeID int64) ([]models.Store, error) {
	store, err := s.stores.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, notFoundAs(err, "Store not found")
	}
	if err := s.users.RemoveFavoriteStore(ctx, userKey, store.ID); err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return s.FavoriteStores(ctx, userKey)
}

// FavoriteStores lists the user's favorite stores.
func (s *UserService) FavoriteStores(ctx context.Context, userKey string) ([]models.Store, error) {
	stores, err := s.users.FavoriteStores(ctx, userKey)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return stores, nil
}
