package transport

type CreateProductRequest struct {
	Name              string  `json:"name"`
	Image             string  `json:"image"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	DiscountPrice     float64 `json:"discount_price"`
	OriginCountry     string  `json:"origin_country"`
	Rating            float64 `json:"rating"`
	AvailableQuantity uint    `json:"available_quantity"`
	Description       string  `json:"description"`
}

type PatchQuantityRequest struct {
	AvailableQuantity *uint `json:"available_quantity"`
}

type ImportRequest struct {
	UserEmail        string `json:"user_email"`
	ProductName      string `json:"product_name"`
	ProductID        string `json:"product_id"`
	ImportedQuantity uint   `json:"imported_quantity"`
}

type ExportProductRequest struct {
	UserEmail         string  `json:"user_email"`
	Name              string  `json:"name"`
	Image             string  `json:"image"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	DiscountPrice     float64 `json:"discount_price"`
	OriginCountry     string  `json:"origin_country"`
	Rating            float64 `json:"rating"`
	AvailableQuantity uint    `json:"available_quantity"`
	Description       string  `json:"description"`
}

// PatchExportRequest carries the descriptive fields of an export record; nil
// fields are left untouched. The same patch is mirrored onto the referenced
// product.
type PatchExportRequest struct {
	Name              *string  `json:"name"`
	Image             *string  `json:"image"`
	Category          *string  `json:"category"`
	Price             *float64 `json:"price"`
	DiscountPrice     *float64 `json:"discount_price"`
	OriginCountry     *string  `json:"origin_country"`
	Rating            *float64 `json:"rating"`
	AvailableQuantity *uint    `json:"available_quantity"`
	Description       *string  `json:"description"`
}
