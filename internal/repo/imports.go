package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/smart-shop/internal/models"
)

// UpsertImport adds quantity to the user's existing record for the product, or
// creates one. Both steps run in one transaction so two racing requests for the
// same (user_email, product_id) pair cannot both insert; the unique index backs
// that up at the schema level. The returned flag reports whether a new record
// was created.
func (r *GormRepo) UpsertImport(ctx context.Context, userEmail, productName string, productID uuid.UUID, quantity uint) (*models.ImportRecord, bool, error) {
	if quantity < 1 {
		quantity = 1
	}

	var (
		rec     models.ImportRecord
		created bool
	)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_email = ? AND product_id = ?", userEmail, productID).First(&rec).Error
		if err == nil {
			rec.ImportedQuantity += quantity
			return tx.Save(&rec).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rec = models.ImportRecord{
			UserEmail:        userEmail,
			ProductName:      productName,
			ProductID:        productID,
			ImportedQuantity: quantity,
		}
		created = true
		return tx.Create(&rec).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &rec, created, nil
}

func (r *GormRepo) ImportsByUser(ctx context.Context, userEmail string) ([]models.ImportRecord, error) {
	var items []models.ImportRecord
	if err := r.DB.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteImport removes one record by id. A missing id is not an error.
func (r *GormRepo) DeleteImport(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ImportRecord{}).Error
}
