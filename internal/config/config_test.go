package config_test

import (
	"testing"

	"storehub/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 86400, cfg.JWT.ExpiresInSec)
	assert.Equal(t, 5, cfg.App.UploadMaxMB)
	assert.False(t, cfg.IsDevelopment())
}

func TestFromViper_RequiresSecretOutsideDevelopment(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := config.FromViper(v)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromViper_DevelopmentFallbackSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "development")
	v.Set("BASE_URL", "http://localhost:8080/")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
}
