package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/repository"
	"stockroom/internal/storage"
)

func setupRouterTest(t *testing.T) *echo.Echo {
	t.Helper()
	dir := t.TempDir()
	repo := repository.NewInventoryRepository(dir)
	require.NoError(t, repo.EnsureInitialized())

	e := echo.New()
	SetupRoutes(e, repo, storage.NewPhotoStore(dir))
	return e
}

func TestRouter_RegisterListRoundTrip(t *testing.T) {
	e := setupRouterTest(t)

	form := url.Values{"inventory_name": {"Drill"}, "description": {"cordless"}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Drill", items[0]["name"])
	assert.Equal(t, "cordless", items[0]["description"])
	assert.Nil(t, items[0]["photoUrl"])
}

func TestRouter_MethodNotAllowedIsPlainText(t *testing.T) {
	e := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodPatch, "/inventory", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
	assert.Equal(t, "method not allowed", rec.Body.String())
}

func TestRouter_HealthCheck(t *testing.T) {
	e := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
