package model

import (
	"time"

	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	ProjectStatusDraft  = "draft"
	ProjectStatusActive = "active"
	ProjectStatusClosed = "closed"
)

// DefaultSortOrder puts projects without an explicit order at the end of listings.
const DefaultSortOrder = 1000000

/* ===================== Model ===================== */

type CharityProject struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Name             string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Slug             string `gorm:"column:slug;type:varchar(128);not null;uniqueIndex" json:"slug"`
	ShortDescription string `gorm:"column:short_description;type:varchar(5000);not null" json:"short_description"`
	Status           string `gorm:"column:status;type:varchar(16);not null;check:chk_charity_projects_status,status IN ('draft','active','closed')" json:"status"`

	LaunchDate time.Time `gorm:"column:launch_date;not null;index" json:"launch_date"`

	AdditionalDescription *string `gorm:"column:additional_description;type:varchar(50000)" json:"additional_description,omitempty"`

	// Sum of all donations for this project. Only the donation flow writes it.
	DonationAmount int64 `gorm:"column:donation_amount;not null;default:0" json:"donation_amount"`
	SortOrder      int   `gorm:"column:sort_order;not null;default:1000000" json:"sort_order"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CharityProject) TableName() string { return "charity_projects" }

/* ===================== Hooks ===================== */

func (p *CharityProject) BeforeSave(tx *gorm.DB) error {
	p.LaunchDate = p.LaunchDate.UTC()
	return nil
}

/* ===================== Helpers ===================== */

func IsValidStatus(s string) bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusActive, ProjectStatusClosed:
		return true
	}
	return false
}
