package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"charity_backend/internals/features/charity/donations/dto"
	donationService "charity_backend/internals/features/charity/donations/service"
	projectModel "charity_backend/internals/features/charity/projects/model"
	helper "charity_backend/internals/helpers"
)

/*
	========================================================
	  Controller
	========================================================
*/

type DonationController struct {
	Service   *donationService.DonationService
	Validator *helper.Validator
	Location  *time.Location
	Now       func() time.Time
}

func NewDonationController(db *gorm.DB, loc *time.Location) *DonationController {
	if loc == nil {
		loc = time.UTC
	}
	v := helper.NewValidator()
	v.Location = loc
	if err := v.RegisterRule("project_exists", projectExists(db), "The selected {0} is invalid."); err != nil {
		panic(fmt.Sprintf("register project_exists: %v", err))
	}
	ctrl := &DonationController{
		Service:   donationService.NewDonationService(db),
		Validator: v,
		Location:  loc,
		Now:       time.Now,
	}
	v.Now = func() time.Time { return ctrl.Now() }
	return ctrl
}

// projectExists checks charity_project_id against charity_projects.id. A
// failed lookup is reported through helper.RuleFailed, not as a field error.
func projectExists(db *gorm.DB) validator.FuncCtx {
	return func(ctx context.Context, fl validator.FieldLevel) bool {
		id, err := helper.NumericString(fl.Field().String()).Int64()
		if err != nil {
			return false
		}
		var count int64
		if err := db.WithContext(ctx).
			Model(&projectModel.CharityProject{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			log.Printf("[ERROR] project_exists lookup: %v", err)
			helper.RuleFailed(ctx, err)
			return true
		}
		return count > 0
	}
}

func createFailed(c *fiber.Ctx, err error) error {
	return helper.JsonError(c, http.StatusInternalServerError,
		fmt.Sprintf("%s - %v", dto.MsgCreateFailed, err))
}

/*
	========================================================
	  Create
	  POST /v1/donate
	========================================================
*/
// CreateDonation godoc
// @Summary      Record a donation
// @Description  Stores the donation and recomputes the project's donation_amount in one transaction.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateDonationRequest  true  "Donation"
// @Success      201   {object}  dto.DonationCreatedResponse
// @Failure      400   {object}  helper.ErrorResponse
// @Failure      404   {object}  helper.ErrorResponse
// @Failure      422   {object}  helper.ErrorResponse
// @Failure      500   {object}  helper.ErrorResponse
// @Router       /v1/donate [post]
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		log.Println("[ERROR] BodyParser failed:", err)
		return helper.JsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()

	errs, err := ctrl.Validator.Struct(c.UserContext(), &body)
	if err != nil {
		return createFailed(c, err)
	}
	if !errs.Empty() {
		return helper.JsonValidationError(c, errs.Errors, errs.Order)
	}

	donation, err := body.ToModel(ctrl.Now(), ctrl.Location)
	if err != nil {
		return createFailed(c, err)
	}
	if err := ctrl.Service.Create(c.UserContext(), donation); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, dto.MsgDonationCreated, "donation", dto.FromModel(donation))
}
