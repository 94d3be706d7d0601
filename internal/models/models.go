package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	Name              string    `gorm:"not null"                  json:"name"`
	Image             string    `json:"image"`
	Category          string    `gorm:"index"                     json:"category"`
	Price             float64   `gorm:"not null"                  json:"price"`
	DiscountPrice     float64   `json:"discount_price"`
	OriginCountry     string    `json:"origin_country"`
	Rating            float64   `json:"rating"`
	AvailableQuantity uint      `json:"available_quantity"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index"      json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ImportRecord holds one user's imported quantity of one product. The composite
// unique index makes the one-record-per-(user_email, product_id) invariant a
// constraint instead of handler logic.
type ImportRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"                                   json:"id"`
	UserEmail        string    `gorm:"not null;uniqueIndex:idx_import_user_product"           json:"user_email"`
	ProductName      string    `gorm:"not null"                                               json:"product_name"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_import_user_product" json:"product_id"`
	ImportedQuantity uint      `gorm:"default:1"                                              json:"imported_quantity"`
	CreatedAt        time.Time `gorm:"autoCreateTime"                                         json:"created_at"`
}

func (r *ImportRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ExportRecord mirrors the descriptive fields of the Product it was created
// alongside. OriginalProductID points at that Product; patches and deletes of an
// export cascade to it.
type ExportRecord struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	UserEmail         string    `gorm:"index;not null"            json:"user_email"`
	OriginalProductID uuid.UUID `gorm:"type:uuid;index;not null"  json:"original_product_id"`
	Name              string    `gorm:"not null"                  json:"name"`
	Image             string    `json:"image"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	DiscountPrice     float64   `json:"discount_price"`
	OriginCountry     string    `json:"origin_country"`
	Rating            float64   `json:"rating"`
	AvailableQuantity uint      `json:"available_quantity"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `gorm:"autoCreateTime"            json:"created_at"`
}

func (r *ExportRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
