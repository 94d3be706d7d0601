package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	ImportHandler  *ImportHTTP
	ExportHandler  *ExportHTTP
	SearchHandler  *SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Smart server is running") })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/products", d.CatalogHandler.CreateProduct)
	e.GET("/products", d.CatalogHandler.GetProducts)
	e.GET("/products/search", d.SearchHandler.Search)
	e.GET("/latest-products", d.CatalogHandler.LatestProducts)
	e.GET("/productDetails/:id", d.CatalogHandler.ProductDetails)
	e.PATCH("/products/:id", d.CatalogHandler.PatchQuantity)
	e.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	e.POST("/myImport", d.ImportHandler.CreateImport)
	e.GET("/myImport", d.ImportHandler.ImportsByUser)
	e.DELETE("/myImport/:id", d.ImportHandler.DeleteImport)

	e.POST("/exportProduct", d.ExportHandler.CreateExport)
	e.GET("/myExport", d.ExportHandler.ExportsByUser)
	e.PATCH("/exportProduct/:id", d.ExportHandler.PatchExport)
	e.DELETE("/exportProduct/:id", d.ExportHandler.DeleteExport)
}
