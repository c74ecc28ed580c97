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
	"storehub/internal/services"
)

func TestStoreService_CreateStore(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	err := service.CreateStore(ctx, &models.Store{Name: "Corner"})
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	store := &models.Store{Name: "Corner", Address: "1 Main St", Location: models.GeoPoint{Longitude: 106.8, Latitude: -6.2}}
	mockRepo.On("Create", mock.Anything, store).Return(nil).Once()
	require.NoError(t, service.CreateStore(ctx, store))
	mockRepo.AssertExpectations(t)
}

func TestStoreService_UpdateStore(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	empty := ""
	_, err := service.UpdateStore(ctx, 1, repositories.StoreChanges{Address: &empty})
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	loc := models.GeoPoint{Longitude: 1, Latitude: 2}
	changes := repositories.StoreChanges{Location: &loc}
	mockRepo.On("Update", mock.Anything, int64(1), changes).Return(&models.Store{StoreID: 1, Location: loc}, nil).Once()
	store, err := service.UpdateStore(ctx, 1, changes)
	require.NoError(t, err)
	assert.Equal(t, loc, store.Location)

	mockRepo.On("Update", mock.Anything, int64(2), changes).Return(nil, errs.ErrNotFound).Once()
	_, err = service.UpdateStore(ctx, 2, changes)
	assert.Equal(t, "Store not found", errs.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

func TestStoreService_DeleteStore(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	existing := &models.Store{ID: "s1", StoreID: 1}
	mockRepo.On("GetByStoreID", mock.Anything, int64(1)).Return(existing, nil).Once()
	mockRepo.On("Delete", mock.Anything, "s1").Return(nil).Once()
	deleted, err := service.DeleteStore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, existing, deleted)

	mockRepo.On("GetByStoreID", mock.Anything, int64(9)).Return(nil, errs.ErrNotFound).Once()
	_, err = service.DeleteStore(ctx, 9)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	mockRepo.AssertExpectations(t)
}
