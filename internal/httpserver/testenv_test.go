package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/repo"
	"github.com/example/smart-shop/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.ImportRecord{}, &models.ExportRecord{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		ImportHandler:  &ImportHTTP{Svc: &service.ImportService{Repo: gormRepo}},
		ExportHandler:  &ExportHTTP{Svc: &service.ExportService{Repo: gormRepo}},
		SearchHandler:  NewSearchHandler(nil, "product"),
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder, out interface{}) {
	env.T.Helper()
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), out))
}

func (env *testEnv) createProduct(p *models.Product) {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(p).Error)
}

func (env *testEnv) get(path string) *httptest.ResponseRecorder {
	return env.doJSONRequest(http.MethodGet, path, nil)
}
