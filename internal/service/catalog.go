package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/smart-shop/internal/cache"
	"github.com/example/smart-shop/internal/logging"
	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/repo"
	"github.com/example/smart-shop/internal/transport"
)

// LatestLimit caps the latest-products listing.
const LatestLimit = 8

type CatalogService struct {
	Repo  *repo.GormRepo
	Cache *cache.ProductCache
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	prod := models.Product{
		Name:              req.Name,
		Image:             req.Image,
		Category:          req.Category,
		Price:             req.Price,
		DiscountPrice:     req.DiscountPrice,
		OriginCountry:     req.OriginCountry,
		Rating:            req.Rating,
		AvailableQuantity: req.AvailableQuantity,
		Description:       req.Description,
	}

	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}
	s.invalidateLatest(ctx)
	return created, nil
}

// LatestProducts serves from redis when possible and repopulates the cache
// asynchronously after a database read.
func (s *CatalogService) LatestProducts(ctx context.Context) ([]models.Product, error) {
	if s.Cache != nil {
		if items, err := s.Cache.GetLatest(ctx); err == nil {
			return items, nil
		}
	}

	items, err := s.Repo.LatestProducts(ctx, LatestLimit)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Cache.SetLatest(ctx, items); err != nil {
				logging.FromContext(ctx).Warn("cache populate failed", "error", err)
			}
		}()
	}

	return items, nil
}

func (s *CatalogService) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx, category)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) PatchQuantity(ctx context.Context, id uuid.UUID, req transport.PatchQuantityRequest) (*models.Product, error) {
	if req.AvailableQuantity == nil {
		return nil, fmt.Errorf("%w: available_quantity is required", ErrValidation)
	}

	prod, err := s.Repo.UpdateProductQuantity(ctx, id, *req.AvailableQuantity)
	if err != nil {
		return nil, err
	}
	s.invalidateLatest(ctx)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidateLatest(ctx)
	return nil
}

func (s *CatalogService) invalidateLatest(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateLatest(ctx); err != nil {
		logging.FromContext(ctx).Warn("cache invalidate failed", "error", err)
	}
}
