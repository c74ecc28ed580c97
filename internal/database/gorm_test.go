package database_test

import (
	"errors"
	"testing"

	"storehub/internal/database"
	"storehub/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(database.Opts{Driver: "mysql"})
	assert.ErrorIs(t, err, database.ErrUnsupportedDriver)
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	db, err := database.Open(database.Opts{Driver: "sqlite", DSN: "file::memory:", MaxOpenConns: 1, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	assert.True(t, db.Migrator().HasTable("inventories"))
	assert.True(t, db.Migrator().HasIndex("inventories", "idx_inventory_store_product"))
	assert.True(t, db.Migrator().HasTable("user_favorite_stores"))
}

func TestTranslate(t *testing.T) {
	assert.Nil(t, database.Translate(nil))
	assert.ErrorIs(t, database.Translate(gorm.ErrRecordNotFound), errs.ErrNotFound)
	assert.ErrorIs(t, database.Translate(gorm.ErrDuplicatedKey), errs.ErrDuplicate)

	other := errors.New("connection refused")
	assert.Equal(t, other, database.Translate(other))
}
