package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lauremed/catalog/internal/domain"
)

func newTestGormStorage(t *testing.T) *GormStorage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := NewGormStorageWithDB(db)
	require.NoError(t, s.MigrateDB())
	s.CheckSeedData()
	return s
}

func TestGormStorage_SeededFixtures(t *testing.T) {
	s := newTestGormStorage(t)
	ctx := context.Background()

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 8)

	specialties, err := s.GetSpecialties(ctx)
	require.NoError(t, err)
	assert.Len(t, specialties, 10)

	// Re-running the seed never duplicates rows.
	s.CheckSeedData()
	products, err = s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestGormStorage_ContractMatchesMemory(t *testing.T) {
	s := newTestGormStorage(t)
	ctx := context.Background()

	filtered, err := s.GetProductsByCategory(ctx, "Natural Pain Relief")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Organic Pain Relief Gel", filtered[0].Name)

	bySpec, err := s.GetProductsBySpecialty(ctx, "Nutrition Care")
	require.NoError(t, err)
	assert.Len(t, bySpec, 2)

	found, err := s.SearchProducts(ctx, "IMMUN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Organic Immunity Plus", found[0].Name)

	missing, err := s.GetProduct(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGormStorage_CartLifecycle(t *testing.T) {
	s := newTestGormStorage(t)
	ctx := context.Background()

	userID := "user-1"
	productID := "product-1"
	qty := 2
	created, err := s.AddToCart(ctx, domain.InsertCartItem{
		ProductID: &productID,
		UserID:    &userID,
		Quantity:  &qty,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	items, err := s.GetCartItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, *items[0].Quantity)

	updated, err := s.UpdateCartItem(ctx, created.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 7, *updated.Quantity)
	assert.Equal(t, productID, *updated.ProductID)

	notFound, err := s.UpdateCartItem(ctx, "no-such-id", 3)
	require.NoError(t, err)
	assert.Nil(t, notFound)

	removed, err := s.RemoveFromCart(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveFromCart(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGormStorage_Users(t *testing.T) {
	s := newTestGormStorage(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, domain.InsertUser{Username: "meera", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", created.Password)

	byName, err := s.GetUserByUsername(ctx, "meera")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := s.GetUser(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
