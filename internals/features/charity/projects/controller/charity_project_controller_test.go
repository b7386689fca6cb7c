package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"charity_backend/internals/configs"
	database "charity_backend/internals/databases"
	model "charity_backend/internals/features/charity/projects/model"
	helper "charity_backend/internals/helpers"
)

type listBody struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       []json.RawMessage `json:"data"`
	Pagination helper.Pagination `json:"pagination"`
}

type detailBody struct {
	Success bool `json:"success"`
	Data    struct {
		Name                  string  `json:"name"`
		Slug                  string  `json:"slug"`
		Status                string  `json:"status"`
		LaunchDate            string  `json:"launch_date"`
		DonationAmount        int64   `json:"donation_amount"`
		AdditionalDescription *string `json:"additional_description"`
	} `json:"data"`
}

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.Open(configs.Config{
		DBDriver:   configs.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "ctl.db"),
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	ctl := NewCharityProjectController(db, time.UTC)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/v1/charity-projects", ctl.List)
	app.Get("/v1/charity-projects/:slug", ctl.GetBySlug)
	return app, db
}

func seedProjects(t *testing.T, db *gorm.DB, n int, status string) {
	t.Helper()
	for i := 1; i <= n; i++ {
		p := model.CharityProject{
			Name:             fmt.Sprintf("%s %d", status, i),
			Slug:             fmt.Sprintf("%s-%d", status, i),
			ShortDescription: "<p>short</p>",
			Status:           status,
			LaunchDate:       time.Date(2025, 1, 10+i, 11, 22, 0, 0, time.UTC),
			SortOrder:        i,
		}
		require.NoError(t, db.Create(&p).Error)
	}
}

func get(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListDefaultsToActiveFirstPage(t *testing.T) {
	app, db := setup(t)
	seedProjects(t, db, 5, model.ProjectStatusActive)
	seedProjects(t, db, 2, model.ProjectStatusClosed)
	seedProjects(t, db, 2, model.ProjectStatusDraft)

	var body listBody
	status := get(t, app, "/v1/charity-projects", &body)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 3)
	assert.Equal(t, int64(5), body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.PerPage)
	assert.True(t, body.Pagination.HasNext)

	var first map[string]any
	require.NoError(t, json.Unmarshal(body.Data[0], &first))
	assert.Equal(t, "active-1", first["slug"])
	assert.NotContains(t, first, "donation_amount")
	assert.NotContains(t, first, "additional_description")
}

func TestListClosedAndUnknownStatus(t *testing.T) {
	app, db := setup(t)
	seedProjects(t, db, 4, model.ProjectStatusActive)
	seedProjects(t, db, 1, model.ProjectStatusClosed)

	var body listBody
	require.Equal(t, http.StatusOK, get(t, app, "/v1/charity-projects?status=closed", &body))
	require.Len(t, body.Data, 1)

	var errBody helper.ErrorResponse
	require.Equal(t, http.StatusUnprocessableEntity, get(t, app, "/v1/charity-projects?status=draft", &errBody))
	assert.Equal(t, "The selected status is invalid.", errBody.Message)
}

func TestListPerPageAndPage(t *testing.T) {
	app, db := setup(t)
	seedProjects(t, db, 12, model.ProjectStatusActive)

	var body listBody
	require.Equal(t, http.StatusOK, get(t, app, "/v1/charity-projects?per_page=5&page=3", &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 3, body.Pagination.Page)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.False(t, body.Pagination.HasNext)

	var errBody helper.ErrorResponse
	require.Equal(t, http.StatusUnprocessableEntity, get(t, app, "/v1/charity-projects?per_page=1", &errBody))
	assert.Equal(t, "The per page field must be at least 3.", errBody.Message)
	assert.Contains(t, errBody.Errors, "per_page")

	require.Equal(t, http.StatusUnprocessableEntity, get(t, app, "/v1/charity-projects?per_page=50", &errBody))
	require.Equal(t, http.StatusUnprocessableEntity, get(t, app, "/v1/charity-projects?per_page=abc", &errBody))
	assert.Equal(t, "The per page field must be an integer.", errBody.Message)
}

func TestListByLaunchDate(t *testing.T) {
	app, db := setup(t)
	seedProjects(t, db, 5, model.ProjectStatusActive) // launches 2025-01-11 .. 2025-01-15

	var body listBody
	require.Equal(t, http.StatusOK, get(t, app, "/v1/charity-projects?launch_date=2025-01-12", &body))
	require.Len(t, body.Data, 1)

	var errBody helper.ErrorResponse
	require.Equal(t, http.StatusUnprocessableEntity, get(t, app, "/v1/charity-projects?launch_date=yesterday", &errBody))
	assert.Equal(t, "The launch date field must be a valid date.", errBody.Message)
}

func TestListEmptyIsNotFound(t *testing.T) {
	app, db := setup(t)
	seedProjects(t, db, 2, model.ProjectStatusActive)

	var errBody helper.ErrorResponse
	require.Equal(t, http.StatusNotFound, get(t, app, "/v1/charity-projects?page=5", &errBody))
	assert.Equal(t, "No project found", errBody.Message)
	assert.Equal(t, "NOT_FOUND", errBody.ErrorCode)

	require.Equal(t, http.StatusNotFound, get(t, app, "/v1/charity-projects?launch_date=1999-01-01", &errBody))
}

func TestDetailRoundsDonationAmount(t *testing.T) {
	app, db := setup(t)
	seedProjects(t, db, 1, model.ProjectStatusDraft)
	require.NoError(t, db.Model(&model.CharityProject{}).
		Where("slug = ?", "draft-1").
		Update("donation_amount", 250).Error)

	var body detailBody
	require.Equal(t, http.StatusOK, get(t, app, "/v1/charity-projects/draft-1", &body))
	assert.True(t, body.Success)
	assert.Equal(t, "draft-1", body.Data.Slug)
	assert.Equal(t, model.ProjectStatusDraft, body.Data.Status)
	assert.Equal(t, int64(300), body.Data.DonationAmount)
	assert.Nil(t, body.Data.AdditionalDescription)

	// reads never write the rounded figure back
	var again detailBody
	require.Equal(t, http.StatusOK, get(t, app, "/v1/charity-projects/draft-1", &again))
	assert.Equal(t, body.Data, again.Data)

	var stored model.CharityProject
	require.NoError(t, db.Where("slug = ?", "draft-1").First(&stored).Error)
	assert.Equal(t, int64(250), stored.DonationAmount)
}

func TestDetailUnknownSlug(t *testing.T) {
	app, _ := setup(t)

	var errBody helper.ErrorResponse
	require.Equal(t, http.StatusNotFound, get(t, app, "/v1/charity-projects/non-existent-slug", &errBody))
	assert.Equal(t, "No project found", errBody.Message)
}
