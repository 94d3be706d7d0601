package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/smart-shop/internal/cache"
	"github.com/example/smart-shop/internal/logging"
	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/repo"
	"github.com/example/smart-shop/internal/transport"
)

type ExportService struct {
	Repo  *repo.GormRepo
	Cache *cache.ProductCache
}

// CreateExport inserts a new product and an export record referencing it.
func (s *ExportService) CreateExport(ctx context.Context, req transport.ExportProductRequest) (*models.Product, *models.ExportRecord, error) {
	if req.Name == "" {
		return nil, nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.UserEmail == "" {
		return nil, nil, fmt.Errorf("%w: user_email is required", ErrValidation)
	}

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
	rec := models.ExportRecord{
		UserEmail:         req.UserEmail,
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

	if err := s.Repo.CreateExport(ctx, &prod, &rec); err != nil {
		return nil, nil, err
	}
	s.invalidateLatest(ctx)
	return &prod, &rec, nil
}

func (s *ExportService) ExportsByUser(ctx context.Context, userEmail string) ([]models.ExportRecord, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: user_email is required", ErrValidation)
	}
	return s.Repo.ExportsByUser(ctx, userEmail)
}

func (s *ExportService) PatchExport(ctx context.Context, id uuid.UUID, req transport.PatchExportRequest) (*models.ExportRecord, error) {
	rec, err := s.Repo.PatchExport(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidateLatest(ctx)
	return rec, nil
}

func (s *ExportService) DeleteExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	rec, err := s.Repo.DeleteExport(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateLatest(ctx)
	return rec, nil
}

func (s *ExportService) invalidateLatest(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateLatest(ctx); err != nil {
		logging.FromContext(ctx).Warn("cache invalidate failed", "error", err)
	}
}
