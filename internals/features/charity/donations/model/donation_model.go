package model

import (
	"time"

	"gorm.io/gorm"

	projectModel "charity_backend/internals/features/charity/projects/model"
)

type Donation struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	CharityProjectID uint64                       `gorm:"column:charity_project_id;not null;index" json:"charity_project_id"`
	CharityProject   *projectModel.CharityProject `gorm:"foreignKey:CharityProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	DonationDate time.Time `gorm:"column:donation_date;not null" json:"donation_date"`
	Amount       int64     `gorm:"column:amount;not null;check:chk_donations_amount,amount >= 1" json:"amount"`
	Comment      *string   `gorm:"column:comment;type:varchar(1000)" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donation) TableName() string { return "donations" }

func (d *Donation) BeforeSave(tx *gorm.DB) error {
	d.DonationDate = d.DonationDate.UTC()
	return nil
}
