package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/transport"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	req := transport.CreateProductRequest{
		Name:              "Mango",
		Image:             "https://img.example/mango.png",
		Category:          "Fruits",
		Price:             3.5,
		DiscountPrice:     2.9,
		OriginCountry:     "Bangladesh",
		Rating:            4.7,
		AvailableQuantity: 120,
		Description:       "Sweet himsagar mango",
	}

	rec := env.doJSONRequest(http.MethodPost, "/products", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	env.decode(rec, &resp)
	require.NotEqual(t, uuid.Nil, resp.ID)
	require.Equal(t, "Mango", resp.Name)
	require.Equal(t, "Fruits", resp.Category)
	require.EqualValues(t, 120, resp.AvailableQuantity)
	require.False(t, resp.CreatedAt.IsZero(), "creation timestamp must be stamped by the server")

	var stored models.Product
	require.NoError(t, env.DB.First(&stored, "id = ?", resp.ID).Error)
	require.Equal(t, resp.Name, stored.Name)
}

func TestLatestProductsNewestFirstLimitEight(t *testing.T) {
	env := newTestEnv(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		env.createProduct(&models.Product{
			Name:      fmt.Sprintf("product-%d", i),
			Price:     1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	rec := env.get("/latest-products")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	env.decode(rec, &items)
	require.Len(t, items, 8)
	require.Equal(t, "product-9", items[0].Name)
	require.Equal(t, "product-2", items[7].Name)
	for i := 1; i < len(items); i++ {
		require.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt), "items must be ordered newest first")
	}
}

func TestGetProductsCategoryFilter(t *testing.T) {
	env := newTestEnv(t)

	env.createProduct(&models.Product{Name: "Mango", Category: "Fruits", Price: 1})
	env.createProduct(&models.Product{Name: "Lychee", Category: "fruits", Price: 1})
	env.createProduct(&models.Product{Name: "Carrot", Category: "Vegetables", Price: 1})

	rec := env.get("/products?category=FRUITS")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	env.decode(rec, &items)
	require.Len(t, items, 2)
	for _, p := range items {
		require.Equal(t, "fruits", strings.ToLower(p.Category))
	}

	rec = env.get("/products")
	env.decode(rec, &items)
	require.Len(t, items, 3)
}

func TestProductDetails(t *testing.T) {
	env := newTestEnv(t)

	prod := models.Product{Name: "Mango", Price: 3.5}
	env.createProduct(&prod)

	rec := env.get("/productDetails/" + prod.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	env.decode(rec, &resp)
	require.Equal(t, prod.ID, resp.ID)

	rec = env.get("/productDetails/" + uuid.NewString())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = env.get("/productDetails/not-a-uuid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchQuantityOverwritesOnlyQuantity(t *testing.T) {
	env := newTestEnv(t)

	prod := models.Product{Name: "Mango", Category: "Fruits", Price: 3.5, AvailableQuantity: 120}
	env.createProduct(&prod)

	qty := uint(42)
	rec := env.doJSONRequest(http.MethodPatch, "/products/"+prod.ID.String(), transport.PatchQuantityRequest{AvailableQuantity: &qty})
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Product
	require.NoError(t, env.DB.First(&stored, "id = ?", prod.ID).Error)
	require.EqualValues(t, 42, stored.AvailableQuantity)
	require.Equal(t, "Mango", stored.Name)
	require.Equal(t, "Fruits", stored.Category)
	require.Equal(t, 3.5, stored.Price)
}

func TestPatchQuantityValidation(t *testing.T) {
	env := newTestEnv(t)

	prod := models.Product{Name: "Mango", Price: 3.5}
	env.createProduct(&prod)

	rec := env.doJSONRequest(http.MethodPatch, "/products/"+prod.ID.String(), map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	qty := uint(1)
	rec = env.doJSONRequest(http.MethodPatch, "/products/"+uuid.NewString(), transport.PatchQuantityRequest{AvailableQuantity: &qty})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	prod := models.Product{Name: "Mango", Price: 3.5}
	env.createProduct(&prod)

	rec := env.doJSONRequest(http.MethodDelete, "/products/"+prod.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	env.DB.Model(&models.Product{}).Count(&count)
	require.EqualValues(t, 0, count)

	rec = env.doJSONRequest(http.MethodDelete, "/products/"+prod.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
