package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/security"
	"storehub/internal/services"
)

func newUserService() (*services.UserService, *MockUserRepository, *MockStoreRepository, *MockCounterRepository) {
	users := new(MockUserRepository)
	stores := new(MockStoreRepository)
	counters := new(MockCounterRepository)
	return services.NewUserService(users, stores, counters), users, stores, counters
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	service, users, _, _ := newUserService()
	caller := &models.User{ID: "u1", UserID: 3}

	_, err := service.UpdateUser(ctx, caller, 4, services.UserUpdate{})
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))

	name := "New Name"
	password := "N3w!Password"
	users.On("Update", mock.Anything, "u1", mock.MatchedBy(func(c repositories.UserChanges) bool {
		if c.Name == nil || *c.Name != name || c.Password == nil {
			return false
		}
		ok, _ := security.CheckPassword(password, *c.Password)
		return ok
	})).Return(&models.User{ID: "u1", UserID: 3, Name: name}, nil).Once()

	updated, err := service.UpdateUser(ctx, caller, 3, services.UserUpdate{Name: &name, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	email := "taken@example.com"
	users.On("Update", mock.Anything, "u1", repositories.UserChanges{Email: &email}).Return(nil, errs.ErrDuplicate).Once()
	_, err = service.UpdateUser(ctx, caller, 3, services.UserUpdate{Email: &email})
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	users.AssertExpectations(t)
}

func TestUserService_ProfileImage(t *testing.T) {
	ctx := context.Background()
	service, users, _, _ := newUserService()

	users.On("GetByID", mock.Anything, "u1").Return(&models.User{ID: "u1"}, nil).Once()
	_, err := service.ProfileImage(ctx, "u1")
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	path := "http://localhost:3000/uploads/1-me.png"
	users.On("Update", mock.Anything, "u1", repositories.UserChanges{ImageProfile: &path}).
		Return(&models.User{ID: "u1", ImageProfile: &path}, nil).Once()
	_, err = service.SetProfileImage(ctx, "u1", path)
	require.NoError(t, err)

	users.On("GetByID", mock.Anything, "u1").Return(&models.User{ID: "u1", ImageProfile: &path}, nil).Once()
	got, err := service.ProfileImage(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, path, got)
	users.AssertExpectations(t)
}

func TestUserService_NextUserID(t *testing.T) {
	service, _, _, counters := newUserService()
	counters.On("Current", mock.Anything, models.CounterUserID).Return(int64(41), nil).Once()

	next, err := service.NextUserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), next)
	counters.AssertExpectations(t)
}

func TestUserService_FavoriteStores(t *testing.T) {
	ctx := context.Background()
	service, users, stores, _ := newUserService()
	store := &models.Store{ID: "s1", StoreID: 5, Name: "Corner"}

	stores.On("GetByStoreID", mock.Anything, int64(5)).Return(store, nil).Twice()
	users.On("AddFavoriteStore", mock.Anything, "u1", "s1").Return(nil).Once()
	users.On("FavoriteStores", mock.Anything, "u1").Return([]models.Store{*store}, nil).Once()

	favorites, err := service.AddFavoriteStore(ctx, "u1", 5)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	users.On("RemoveFavoriteStore", mock.Anything, "u1", "s1").Return(nil).Once()
	users.On("FavoriteStores", mock.Anything, "u1").Return([]models.Store{}, nil).Once()
	favorites, err = service.RemoveFavoriteStore(ctx, "u1", 5)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	stores.On("GetByStoreID", mock.Anything, int64(99)).Return(nil, errs.ErrNotFound).Once()
	_, err = service.AddFavoriteStore(ctx, "u1", 99)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, "Store not found", errs.MessageOf(err))

	users.AssertExpectations(t)
	stores.AssertExpectations(t)
}
