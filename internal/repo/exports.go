package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/transport"
)

// CreateExport inserts the new product and its export record in one
// transaction; neither outlives a failure of the other.
func (r *GormRepo) CreateExport(ctx context.Context, prod *models.Product, rec *models.ExportRecord) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prod).Error; err != nil {
			return err
		}
		rec.OriginalProductID = prod.ID
		return tx.Create(rec).Error
	})
}

func (r *GormRepo) ExportsByUser(ctx context.Context, userEmail string) ([]models.ExportRecord, error) {
	var items []models.ExportRecord
	if err := r.DB.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// PatchExport applies the patch to the export record and mirrors the same
// fields onto the referenced product, all in one transaction.
func (r *GormRepo) PatchExport(ctx context.Context, id uuid.UUID, req transport.PatchExportRequest) (*models.ExportRecord, error) {
	var rec models.ExportRecord
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&rec).Error; err != nil {
			return err
		}

		assignments := applyExportPatch(&rec, req)
		if len(assignments) == 0 {
			return nil
		}

		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		return tx.Model(&models.Product{}).
			Where("id = ?", rec.OriginalProductID).
			Updates(assignments).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteExport removes the export record and its referenced product together.
func (r *GormRepo) DeleteExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	var rec models.ExportRecord
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&rec).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ExportRecord{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", rec.OriginalProductID).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func applyExportPatch(rec *models.ExportRecord, req transport.PatchExportRequest) map[string]interface{} {
	assignments := map[string]interface{}{}

	if req.Name != nil {
		rec.Name = *req.Name
		assignments["name"] = *req.Name
	}
	if req.Image != nil {
		rec.Image = *req.Image
		assignments["image"] = *req.Image
	}
	if req.Category != nil {
		rec.Category = *req.Category
		assignments["category"] = *req.Category
	}
	if req.Price != nil {
		rec.Price = *req.Price
		assignments["price"] = *req.Price
	}
	if req.DiscountPrice != nil {
		rec.DiscountPrice = *req.DiscountPrice
		assignments["discount_price"] = *req.DiscountPrice
	}
	if req.OriginCountry != nil {
		rec.OriginCountry = *req.OriginCountry
		assignments["origin_country"] = *req.OriginCountry
	}
	if req.Rating != nil {
		rec.Rating = *req.Rating
		assignments["rating"] = *req.Rating
	}
	if req.AvailableQuantity != nil {
		rec.AvailableQuantity = *req.AvailableQuantity
		assignments["available_quantity"] = *req.AvailableQuantity
	}
	if req.Description != nil {
		rec.Description = *req.Description
		assignments["description"] = *req.Description
	}

	return assignments
}
