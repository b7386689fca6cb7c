package dto

import (
	"fmt"
	"strings"
	"time"

	model "charity_backend/internals/features/charity/donations/model"
	helper "charity_backend/internals/helpers"
)

const (
	MsgDonationCreated = "Donation successfully created"
	MsgCreateFailed    = "Failed to create donation"
	MaxCommentLength   = 255
)

/* ===================== DTO ===================== */

// CreateDonationRequest takes the two numeric fields as NumericString so
// "1000", 1000 and 1000.0 are all accepted and wrong types become field errors.
type CreateDonationRequest struct {
	CharityProjectID *helper.NumericString `json:"charity_project_id" validate:"required,numeric,integer,int_min=1,int_max=9223372036854775807,project_exists" swaggertype:"integer" example:"3"`
	Amount           *helper.NumericString `json:"amount" validate:"required,numeric,integer,int_min=1,int_max=9223372036854775807" swaggertype:"integer" example:"1000"`
	DonationDate     *string               `json:"donation_date" validate:"omitempty,flexdate,before_or_equal_now" example:"2023-10-01T12:00:00Z"`
	Comment          *string               `json:"comment" validate:"omitempty,max=255" example:"Great project!"`
}

func (r *CreateDonationRequest) Normalize() {
	r.CharityProjectID = trimNumeric(r.CharityProjectID)
	r.Amount = trimNumeric(r.Amount)
	if r.DonationDate != nil {
		v := strings.TrimSpace(*r.DonationDate)
		if v == "" {
			r.DonationDate = nil
		} else {
			r.DonationDate = &v
		}
	}
	if r.Comment != nil && strings.TrimSpace(*r.Comment) == "" {
		r.Comment = nil
	}
}

// blank counts as missing so "required" reports it
func trimNumeric(n *helper.NumericString) *helper.NumericString {
	if n == nil {
		return nil
	}
	v := helper.NumericString(strings.TrimSpace(string(*n)))
	if v == "" {
		return nil
	}
	return &v
}

// ToModel builds the row to insert. donation_date defaults to now. Call only
// after validation; the error guards against skipping it.
func (r *CreateDonationRequest) ToModel(now time.Time, loc *time.Location) (*model.Donation, error) {
	if r.CharityProjectID == nil || r.Amount == nil {
		return nil, fmt.Errorf("charity_project_id and amount are required")
	}
	projectID, err := r.CharityProjectID.Int64()
	if err != nil {
		return nil, fmt.Errorf("charity_project_id: %w", err)
	}
	amount, err := r.Amount.Int64()
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	if projectID < 1 || amount < 1 {
		return nil, fmt.Errorf("charity_project_id and amount must be at least 1")
	}

	date := now
	if r.DonationDate != nil {
		t, err := helper.ParseFlexibleTime(*r.DonationDate, loc)
		if err != nil {
			return nil, fmt.Errorf("donation_date: %w", err)
		}
		date = t
	}
	return &model.Donation{
		CharityProjectID: uint64(projectID),
		Amount:           amount,
		DonationDate:     date,
		Comment:          r.Comment,
	}, nil
}

/* ===================== Response ===================== */

type DonationResponse struct {
	ID               uint64    `json:"id" example:"51"`
	CharityProjectID uint64    `json:"charity_project_id" example:"3"`
	Amount           int64     `json:"amount" example:"1000"`
	DonationDate     time.Time `json:"donation_date" example:"2023-10-01T12:00:00Z"`
	Comment          *string   `json:"comment" example:"Great project!"`
}

// DonationCreatedResponse is the 201 body of POST /v1/donate.
type DonationCreatedResponse struct {
	Success  bool             `json:"success" example:"true"`
	Message  string           `json:"message" example:"Donation successfully created"`
	Donation DonationResponse `json:"donation"`
}

func FromModel(m *model.Donation) DonationResponse {
	return DonationResponse{
		ID:               m.ID,
		CharityProjectID: m.CharityProjectID,
		Amount:           m.Amount,
		DonationDate:     m.DonationDate,
		Comment:          m.Comment,
	}
}
