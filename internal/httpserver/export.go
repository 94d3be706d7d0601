package httpserver

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/example/smart-shop/internal/logging"
	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/mykafka"
	"github.com/example/smart-shop/internal/service"
	"github.com/example/smart-shop/internal/transport"
)

type ExportHTTP struct {
	Svc      *service.ExportService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *ExportHTTP) CreateExport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "export.create")

	var req transport.ExportProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("export_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, rec, err := h.Svc.CreateExport(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("export_create_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("export_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save export")
	}

	publish(c, h.Producer, "export_events", rec.UserEmail, map[string]any{
		"type":      "export_created",
		"exportID":  rec.ID,
		"productID": prod.ID,
		"name":      rec.Name,
	})
	indexProduct(c, h.ES, h.Index, *prod)

	l.Info("export_create_success", "export_id", rec.ID, "product_id", prod.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"product": prod,
		"export":  rec,
	})
}

func (h *ExportHTTP) ExportsByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "export.list")

	items, err := h.Svc.ExportsByUser(ctx, c.QueryParam("user_email"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("export_list_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("export_list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get exports")
	}

	return c.JSON(http.StatusOK, items)
}

// PatchExport updates the export record and mirrors the same fields onto the
// product it references.
func (h *ExportHTTP) PatchExport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "export.patch")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("export_patch_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.PatchExportRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("export_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rec, err := h.Svc.PatchExport(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("export_patch_failed", "status", 404, "reason", "export not found")
			return echo.NewHTTPError(http.StatusNotFound, "export not found")
		}
		l.Error("export_patch_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update export")
	}

	publish(c, h.Producer, "export_events", rec.UserEmail, map[string]any{
		"type":      "export_updated",
		"exportID":  rec.ID,
		"productID": rec.OriginalProductID,
	})
	indexProduct(c, h.ES, h.Index, mirroredProduct(rec))

	l.Info("export_patch_success", "export_id", rec.ID)
	return c.JSON(http.StatusOK, rec)
}

// DeleteExport removes the export record and its referenced product. Unlike
// the other delete paths, a missing export is a hard 404.
func (h *ExportHTTP) DeleteExport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "export.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("export_delete_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	rec, err := h.Svc.DeleteExport(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("export_delete_failed", "status", 404, "reason", "export not found")
			return echo.NewHTTPError(http.StatusNotFound, "export not found")
		}
		l.Error("export_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete export")
	}

	publish(c, h.Producer, "export_events", rec.UserEmail, map[string]any{
		"type":      "export_deleted",
		"exportID":  rec.ID,
		"productID": rec.OriginalProductID,
	})
	deindexProduct(c, h.ES, h.Index, rec.OriginalProductID)

	l.Info("export_delete_success", "export_id", rec.ID)
	return c.NoContent(http.StatusNoContent)
}

// mirroredProduct rebuilds the referenced product document from an export
// record for reindexing after a mirrored patch.
func mirroredProduct(rec *models.ExportRecord) models.Product {
	return models.Product{
		ID:                rec.OriginalProductID,
		Name:              rec.Name,
		Image:             rec.Image,
		Category:          rec.Category,
		Price:             rec.Price,
		DiscountPrice:     rec.DiscountPrice,
		OriginCountry:     rec.OriginCountry,
		Rating:            rec.Rating,
		AvailableQuantity: rec.AvailableQuantity,
		Description:       rec.Description,
	}
}
