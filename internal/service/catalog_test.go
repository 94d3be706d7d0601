package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/example/smart-shop/internal/transport"
)

func TestPatchQuantityRequiresField(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.PatchQuantity(context.Background(), uuid.New(), transport.PatchQuantityRequest{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateExportValidatesRequest(t *testing.T) {
	svc := &ExportService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, _, err := svc.CreateExport(ctx, transport.ExportProductRequest{UserEmail: "a@x.com"})
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.CreateExport(ctx, transport.ExportProductRequest{Name: "Mango"})
	require.ErrorIs(t, err, ErrValidation)
}
