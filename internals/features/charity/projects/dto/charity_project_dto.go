// file: internals/features/charity/projects/dto/charity_project_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	model "charity_backend/internals/features/charity/projects/model"
	helper "charity_backend/internals/helpers"
)

const MsgProjectNotFound = "No project found"

// per_page bounds; the validate tag on ListCharityProjectQuery.PerPage must match.
const (
	MinPerPage     = 3
	MaxPerPage     = 10
	DefaultPerPage = 3
)

var PagingOptions = helper.Options{
	DefaultPerPage: DefaultPerPage,
	MinPerPage:     MinPerPage,
	MaxPerPage:     MaxPerPage,
}

/* =========================================================
   Query: LIST
   ========================================================= */

type ListCharityProjectQuery struct {
	Status     *string `json:"status" validate:"omitempty,oneof=active closed"`
	LaunchDate *string `json:"launch_date" validate:"omitempty,flexdate"`
	PerPage    *int    `json:"per_page" validate:"omitnil,min=3,max=10"`
	Page       int     `json:"page" validate:"-"`
}

func trimPtr(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

// ParseListQuery reads ?status=&launch_date=&per_page=&page=. A per_page that
// is not an integer is reported as a field error; the rest is left to Validate.
func ParseListQuery(c *fiber.Ctx) (ListCharityProjectQuery, helper.FieldErrors) {
	var (
		q    ListCharityProjectQuery
		errs helper.FieldErrors
	)
	q.Status = trimPtr(c.Query("status"))
	q.LaunchDate = trimPtr(c.Query("launch_date"))
	if raw := trimPtr(c.Query("per_page")); raw != nil {
		n, err := strconv.Atoi(*raw)
		if err != nil {
			errs.Add("per_page", "The per page field must be an integer.")
		} else {
			q.PerPage = &n
		}
	}
	q.Page = helper.ParsePage(c.Query("page"))
	return q, errs
}

// EffectiveStatus: anything but "closed" means active.
func (q ListCharityProjectQuery) EffectiveStatus() string {
	if q.Status != nil && *q.Status == model.ProjectStatusClosed {
		return model.ProjectStatusClosed
	}
	return model.ProjectStatusActive
}

// LaunchDay parses launch_date in loc. Call only after validation.
func (q ListCharityProjectQuery) LaunchDay(loc *time.Location) *time.Time {
	if q.LaunchDate == nil {
		return nil
	}
	t, err := helper.ParseFlexibleTime(*q.LaunchDate, loc)
	if err != nil {
		return nil
	}
	return &t
}

/* =========================================================
   Responses
   ========================================================= */

// CharityProjectItem is the list view.
type CharityProjectItem struct {
	Name             string    `json:"name" example:"Проект 1"`
	Slug             string    `json:"slug" example:"proekt-1"`
	ShortDescription string    `json:"short_description" example:"<p>Краткое описание проекта 1.</p>"`
	Status           string    `json:"status" enums:"draft,active,closed" example:"active"`
	LaunchDate       time.Time `json:"launch_date" example:"2025-01-11T11:22:00Z"`
}

// CharityProjectDetail is the slug view: list fields plus the displayed total
// and the additional description.
type CharityProjectDetail struct {
	CharityProjectItem
	DonationAmount        int64   `json:"donation_amount" example:"10400"`
	AdditionalDescription *string `json:"additional_description" example:"<p>Дополнительное описание проекта 1.</p>"`
}

// CharityProjectListResponse is the 200 body of GET /v1/charity-projects.
type CharityProjectListResponse struct {
	Success    bool                 `json:"success" example:"true"`
	Message    string               `json:"message" example:"ok"`
	Data       []CharityProjectItem `json:"data"`
	Pagination helper.Pagination    `json:"pagination"`
}

// CharityProjectDetailResponse is the 200 body of GET /v1/charity-projects/{slug}.
type CharityProjectDetailResponse struct {
	Success bool                 `json:"success" example:"true"`
	Message string               `json:"message" example:"ok"`
	Data    CharityProjectDetail `json:"data"`
}

func FromModel(m *model.CharityProject) CharityProjectItem {
	return CharityProjectItem{
		Name:             m.Name,
		Slug:             m.Slug,
		ShortDescription: m.ShortDescription,
		Status:           m.Status,
		LaunchDate:       m.LaunchDate,
	}
}

func FromModels(rows []model.CharityProject) []CharityProjectItem {
	out := make([]CharityProjectItem, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

func FromModelDetail(m *model.CharityProject) CharityProjectDetail {
	return CharityProjectDetail{
		CharityProjectItem:    FromModel(m),
		DonationAmount:        RoundUpToHundred(m.DonationAmount),
		AdditionalDescription: m.AdditionalDescription,
	}
}

// RoundUpToHundred is the display rounding of the total: 1 → 100, 250 → 300, 0 → 0.
func RoundUpToHundred(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return (n + 99) / 100 * 100
}
