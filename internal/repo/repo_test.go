package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/smart-shop/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ImportRecord{}, &models.ExportRecord{}))
	return &GormRepo{DB: db}
}

func TestUpsertImportReportsBranch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	productID := uuid.New()

	rec, created, err := r.UpsertImport(ctx, "a@x.com", "Mango", productID, 2)
	require.NoError(t, err)
	require.True(t, created)
	require.EqualValues(t, 2, rec.ImportedQuantity)

	again, created, err := r.UpsertImport(ctx, "a@x.com", "Mango", productID, 5)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, rec.ID, again.ID)
	require.EqualValues(t, 7, again.ImportedQuantity)

	// a different user importing the same product gets their own record
	_, created, err = r.UpsertImport(ctx, "b@x.com", "Mango", productID, 1)
	require.NoError(t, err)
	require.True(t, created)

	var count int64
	r.DB.Model(&models.ImportRecord{}).Count(&count)
	require.EqualValues(t, 2, count)
}

func TestUpsertImportZeroQuantityBecomesOne(t *testing.T) {
	r := newTestRepo(t)

	rec, _, err := r.UpsertImport(context.Background(), "a@x.com", "Mango", uuid.New(), 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, rec.ImportedQuantity)
}

func TestLatestProductsLimit(t *testing.T) {
	r := newTestRepo(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.DB.Create(&models.Product{
			Name:      "p",
			Price:     1,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	items, err := r.LatestProducts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, base.Add(4*time.Hour).Unix(), items[0].CreatedAt.Unix())
}

func TestDeleteProductMissingIsNotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.DeleteProduct(context.Background(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
