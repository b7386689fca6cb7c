package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"charity_backend/internals/configs"
	database "charity_backend/internals/databases"
	projectModel "charity_backend/internals/features/charity/projects/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	cfg := configs.Config{
		DBDriver:       configs.DriverSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "app.db"),
		DBLogLevel:     "silent",
		Timezone:       "UTC",
		RequestTimeout: 5 * time.Second,
		CORSOrigins:    []string{"*"},
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return NewApp(cfg, db), db
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func TestHealth(t *testing.T) {
	app, db := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Connected", body["database"])

	database.Close(db)
	resp, body = do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "DOWN", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "trace-123", resp.Header.Get("X-Request-ID"))
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/v1/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestDonateThenDetail(t *testing.T) {
	app, db := newTestApp(t)

	p := projectModel.CharityProject{
		ID:               3,
		Name:             "Проект 3",
		Slug:             "proekt-3",
		ShortDescription: "<p>short</p>",
		Status:           projectModel.ProjectStatusActive,
		LaunchDate:       time.Date(2025, 1, 13, 11, 22, 0, 0, time.UTC),
		SortOrder:        3,
	}
	require.NoError(t, db.Create(&p).Error)

	resp, body := do(t, app, http.MethodPost, "/v1/donate",
		`{"charity_project_id": 3, "amount": 1000, "donation_date": "2023-10-01T12:00:00Z", "comment": "..."}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	donation := body["donation"].(map[string]any)
	assert.EqualValues(t, 1000, donation["amount"])

	resp, body = do(t, app, http.MethodPost, "/v1/donate",
		`{"charity_project_id": 3, "amount": 1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, body = do(t, app, http.MethodGet, "/v1/charity-projects/proekt-3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1100, data["donation_amount"])

	var stored projectModel.CharityProject
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, int64(1001), stored.DonationAmount)

	resp, body = do(t, app, http.MethodGet, "/v1/charity-projects", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 1)
}

func TestSwaggerDocListsRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paths, ok := body["paths"].(map[string]any)
	require.True(t, ok, body)
	assert.Contains(t, paths, "/v1/donate")
	assert.Contains(t, paths, "/v1/charity-projects")
	assert.Contains(t, paths, "/v1/charity-projects/{slug}")

	resp, _ = do(t, app, http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDonateAcceptsNumericStrings(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&projectModel.CharityProject{
		Name:             "Проект 1",
		Slug:             "proekt-1",
		ShortDescription: "<p>short</p>",
		Status:           projectModel.ProjectStatusActive,
		LaunchDate:       time.Date(2025, 1, 11, 11, 22, 0, 0, time.UTC),
	}).Error)

	resp, body := do(t, app, http.MethodPost, "/v1/donate", `{"charity_project_id": "1", "amount": "1000"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, body = do(t, app, http.MethodPost, "/v1/donate", `{"charity_project_id": 1, "amount": 1e19}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, body)
	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"The amount field must not be greater than 9223372036854775807."}, errs["amount"])

	resp, _ = do(t, app, http.MethodPost, "/v1/donate", `{"charity_project_id": 1, "amount":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
