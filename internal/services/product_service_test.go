package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/services"
)

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "a", ProductID: 1, Name: "Product A"},
		{ID: "b", ProductID: 2, Name: "Product B"},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "a", ProductID: 1, Name: "Product A"}

	mockRepo.On("GetByProductID", mock.Anything, int64(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByProductID", mock.Anything, int64(99)).Return(nil, errs.ErrNotFound).Once()
	product, err = service.GetProductByID(ctx, 99)
	assert.Nil(t, product)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, "Product not found", errs.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	err := service.CreateProduct(ctx, &models.Product{Name: "  "})
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	newProduct := &models.Product{Name: "New Product"}
	mockRepo.On("Create", mock.Anything, newProduct).Return(nil).Once()
	assert.NoError(t, service.CreateProduct(ctx, newProduct))

	mockRepo.On("Create", mock.Anything, newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(ctx, newProduct)
	assert.EqualError(t, err, "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	name := "Renamed"
	changes := repositories.ProductChanges{Name: &name}
	mockRepo.On("Update", mock.Anything, int64(1), changes).Return(&models.Product{ProductID: 1, Name: name}, nil).Once()
	product, err := service.UpdateProduct(ctx, 1, changes)
	require.NoError(t, err)
	assert.Equal(t, name, product.Name)

	mockRepo.On("Update", mock.Anything, int64(99), changes).Return(nil, errs.ErrNotFound).Once()
	_, err = service.UpdateProduct(ctx, 99, changes)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "a", ProductID: 1, Name: "Product A"}
	mockRepo.On("GetByProductID", mock.Anything, int64(1)).Return(existing, nil).Once()
	mockRepo.On("Delete", mock.Anything, "a").Return(nil).Once()
	deleted, err := service.DeleteProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, existing, deleted)

	mockRepo.On("GetByProductID", mock.Anything, int64(99)).Return(nil, errs.ErrNotFound).Once()
	_, err = service.DeleteProduct(ctx, 99)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	mockRepo.AssertExpectations(t)
}
