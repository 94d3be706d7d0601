package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/example/smart-shop/internal/logging"
	"github.com/example/smart-shop/internal/mykafka"
	"github.com/example/smart-shop/internal/service"
	"github.com/example/smart-shop/internal/transport"
)

type ImportHTTP struct {
	Svc      *service.ImportService
	Producer *mykafka.Producer
}

// CreateImport upserts the caller's record for a product and reports which
// branch ran: "created" with 201, or "incremented" with 200.
func (h *ImportHTTP) CreateImport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "import.create")

	var req transport.ImportRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("import_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rec, created, err := h.Svc.Import(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("import_create_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("import_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save import record")
	}

	result := "incremented"
	status := http.StatusOK
	if created {
		result = "created"
		status = http.StatusCreated
	}

	publish(c, h.Producer, "import_events", rec.UserEmail, map[string]any{
		"type":      "import_" + result,
		"importID":  rec.ID,
		"productID": rec.ProductID,
		"quantity":  rec.ImportedQuantity,
	})

	l.Info("import_create_success", "import_id", rec.ID, "result", result)
	return c.JSON(status, map[string]any{
		"result": result,
		"record": rec,
	})
}

func (h *ImportHTTP) ImportsByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "import.list")

	items, err := h.Svc.ImportsByUser(ctx, c.QueryParam("user_email"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("import_list_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("import_list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get import records")
	}

	return c.JSON(http.StatusOK, items)
}

// DeleteImport removes one record by id. Deleting an id that is already gone
// succeeds silently.
func (h *ImportHTTP) DeleteImport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "import.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("import_delete_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteImport(ctx, id); err != nil {
		l.Error("import_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete import record")
	}

	publish(c, h.Producer, "import_events", id.String(), map[string]any{
		"type":     "import_deleted",
		"importID": id,
	})

	l.Info("import_delete_success", "import_id", id)
	return c.NoContent(http.StatusNoContent)
}
