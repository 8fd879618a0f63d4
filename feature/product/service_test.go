package product_test

import (
	"context"
	"fmt"
	"testing"

	"products-api/core/database"
	"products-api/feature/product"
	"products-api/feature/product/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *product.Service {
	t.Helper()

	// Setup In-Memory DB
	dbCfg := database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := database.Connect(dbCfg)
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Product{})
	assert.NoError(t, err)

	return product.NewService(db, zap.NewNop())
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateRequest{
		Name:        "Widget",
		Description: "A fine widget",
		Price:       9.99,
		Category:    "tools",
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	// Manually created products never carry an external ID
	assert.Nil(t, created.ExternalID)

	got, err := svc.Get(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 9.99, got.Price)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestCreateNegativePrice(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), models.CreateRequest{Name: "Bad", Price: -1})
	assert.ErrorIs(t, err, product.ErrInvalidPrice)
}

func TestListFiltersAndPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		category := "tools"
		if i%2 == 0 {
			category = "toys"
		}
		_, err := svc.Create(ctx, models.CreateRequest{
			Name:     fmt.Sprintf("Item %02d", i),
			Price:    float64(i),
			Category: category,
		})
		assert.NoError(t, err)
	}

	// Default page size
	listing, err := svc.List(ctx, models.ListParams{})
	assert.NoError(t, err)
	assert.Equal(t, int64(25), listing.Total)
	assert.Len(t, listing.Products, product.DefaultPageSize)
	assert.Equal(t, 2, listing.TotalPages)

	// Second page holds the remainder
	listing, err = svc.List(ctx, models.ListParams{Page: 2})
	assert.NoError(t, err)
	assert.Len(t, listing.Products, 5)
	assert.Equal(t, "Item 21", listing.Products[0].Name)

	// Category filter
	listing, err = svc.List(ctx, models.ListParams{Category: "toys"})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), listing.Total)

	// Price range
	min, max := 5.0, 10.0
	listing, err = svc.List(ctx, models.ListParams{MinPrice: &min, MaxPrice: &max})
	assert.NoError(t, err)
	assert.Equal(t, int64(6), listing.Total)

	// Search matches name substrings
	listing, err = svc.List(ctx, models.ListParams{Search: "Item 0"})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), listing.Total)

	// Empty result set reports zero pages
	listing, err = svc.List(ctx, models.ListParams{Category: "nonexistent"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), listing.Total)
	assert.Equal(t, 0, listing.TotalPages)
	assert.Empty(t, listing.Products)
}

func TestUpdatePartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateRequest{
		Name:        "Original",
		Description: "Keep me",
		Price:       5,
		Category:    "tools",
	})
	assert.NoError(t, err)

	// Only the provided fields change
	name := "Renamed"
	updated, err := svc.Update(ctx, created.ID, models.UpdateRequest{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Keep me", updated.Description)
	assert.Equal(t, 5.0, updated.Price)

	bad := -3.0
	_, err = svc.Update(ctx, created.ID, models.UpdateRequest{Price: &bad})
	assert.ErrorIs(t, err, product.ErrInvalidPrice)

	_, err = svc.Update(ctx, 9999, models.UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateRequest{Name: "Doomed", Price: 1})
	assert.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, product.ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, product.ErrNotFound)
}
