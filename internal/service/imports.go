package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/repo"
	"github.com/example/smart-shop/internal/transport"
)

type ImportService struct {
	Repo *repo.GormRepo
}

// Import creates the user's record for the product or adds the requested
// quantity to an existing one. The returned flag is true when a new record was
// created.
func (s *ImportService) Import(ctx context.Context, req transport.ImportRequest) (*models.ImportRecord, bool, error) {
	if req.UserEmail == "" {
		return nil, false, fmt.Errorf("%w: user_email is required", ErrValidation)
	}
	if req.ProductName == "" {
		return nil, false, fmt.Errorf("%w: product_name is required", ErrValidation)
	}
	if req.ProductID == "" {
		return nil, false, fmt.Errorf("%w: product_id is required", ErrValidation)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: product_id is not a uuid", ErrValidation)
	}

	return s.Repo.UpsertImport(ctx, req.UserEmail, req.ProductName, productID, req.ImportedQuantity)
}

func (s *ImportService) ImportsByUser(ctx context.Context, userEmail string) ([]models.ImportRecord, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: user_email is required", ErrValidation)
	}
	return s.Repo.ImportsByUser(ctx, userEmail)
}

func (s *ImportService) DeleteImport(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteImport(ctx, id)
}
