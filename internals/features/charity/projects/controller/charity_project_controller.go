// file: internals/features/charity/projects/controller/charity_project_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "charity_backend/internals/features/charity/projects/dto"
	"charity_backend/internals/features/charity/projects/service"
	helper "charity_backend/internals/helpers"
)

/* =========================
   Controller
   ========================= */

type CharityProjectController struct {
	Service   *service.CharityProjectService
	Validator *helper.Validator
	Location  *time.Location
}

func NewCharityProjectController(db *gorm.DB, loc *time.Location) *CharityProjectController {
	if loc == nil {
		loc = time.UTC
	}
	v := helper.NewValidator()
	v.Location = loc
	return &CharityProjectController{
		Service:   service.NewCharityProjectService(db, loc),
		Validator: v,
		Location:  loc,
	}
}

/*
=========================================================

	LIST
	GET /v1/charity-projects
	Query: status, launch_date, per_page, page
	=========================================================
*/
// List godoc
// @Summary      List charity projects
// @Description  Active projects by default, ordered by sort_order then newest launch_date. An empty page is a 404.
// @Tags         charity-projects
// @Produce      json
// @Param        status       query     string  false  "Project status"            Enums(active, closed)
// @Param        launch_date  query     string  false  "Launch calendar day"       example(2025-01-17)
// @Param        per_page     query     int     false  "Page size"                 minimum(3) maximum(10) default(3)
// @Param        page         query     int     false  "Page number"               minimum(1) default(1)
// @Success      200          {object}  dto.CharityProjectListResponse
// @Failure      404          {object}  helper.ErrorResponse
// @Failure      422          {object}  helper.ErrorResponse
// @Router       /v1/charity-projects [get]
func (ctl *CharityProjectController) List(c *fiber.Ctx) error {
	q, errs := dto.ParseListQuery(c)

	verrs, err := ctl.Validator.Struct(c.UserContext(), &q)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	for _, f := range verrs.Order {
		for _, msg := range verrs.Errors[f] {
			errs.Add(f, msg)
		}
	}
	if !errs.Empty() {
		return helper.JsonValidationError(c, errs.Errors, errs.Order)
	}

	paging := dto.PagingOptions.Resolve(q.Page, q.PerPage)

	rows, total, err := ctl.Service.List(c.UserContext(), service.ListFilter{
		Status:    q.EffectiveStatus(),
		LaunchDay: q.LaunchDay(ctl.Location),
		Offset:    paging.Offset,
		Limit:     paging.Limit,
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, http.StatusNotFound, dto.MsgProjectNotFound)
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/*
=========================================================

	DETAIL
	GET /v1/charity-projects/:slug
	=========================================================
*/
// GetBySlug godoc
// @Summary      Charity project detail
// @Description  Any status, drafts included. donation_amount is rounded up to a multiple of 100.
// @Tags         charity-projects
// @Produce      json
// @Param        slug  path      string  true  "Project slug"  example(proekt-1)
// @Success      200   {object}  dto.CharityProjectDetailResponse
// @Failure      404   {object}  helper.ErrorResponse
// @Router       /v1/charity-projects/{slug} [get]
func (ctl *CharityProjectController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, http.StatusNotFound, dto.MsgProjectNotFound)
	}

	m, err := ctl.Service.GetBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return helper.JsonError(c, http.StatusNotFound, dto.MsgProjectNotFound)
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModelDetail(m))
}
