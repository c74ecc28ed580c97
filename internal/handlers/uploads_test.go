package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storehub/internal/handlers"
	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/services"
	"storehub/internal/storage"
)

// failingStoreRepo rejects every insert. Other methods are not used.
type failingStoreRepo struct {
	repositories.StoreRepository
}

func (failingStoreRepo) Create(context.Context, *models.Store) error {
	return errors.New("insert failed")
}

func TestStoreMultipartCreate_FailedInsertRemovesImage(t *testing.T) {
	uploadDir := t.TempDir()
	images, err := storage.NewDiskImageStore(uploadDir, "http://localhost:3000", 5)
	require.NoError(t, err)

	app := handlers.NewApp(handlers.AppConfig{UploadDir: uploadDir, UploadMaxMB: 5}, nil, handlers.Services{
		Stores: services.NewStoreService(failingStoreRepo{}),
	}, images)

	req := multipartImage(t, http.MethodPost, "/stores", "storeImage", "front.jpg", "image/jpeg", map[string]string{
		"name":     "North",
		"address":  "1 Main St",
		"location": `{"type":"Point","coordinates":[31.2,30.0]}`,
	})
	r := do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "insert failed", r.Message)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
