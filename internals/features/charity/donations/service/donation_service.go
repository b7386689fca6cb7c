package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	donationDTO "charity_backend/internals/features/charity/donations/dto"
	model "charity_backend/internals/features/charity/donations/model"
	projectDTO "charity_backend/internals/features/charity/projects/dto"
	projectModel "charity_backend/internals/features/charity/projects/model"
)

type DonationService struct {
	DB *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{DB: db}
}

func createFailed(err error) *fiber.Error {
	return fiber.NewError(fiber.StatusInternalServerError,
		fmt.Sprintf("%s - %v", donationDTO.MsgCreateFailed, err))
}

// Create inserts d and recomputes the owning project's donation_amount in one
// transaction. The project row is locked before the insert so concurrent
// donations to one project queue up instead of deadlocking on the FK check.
// Errors are *fiber.Error: 404 when the project is gone, 500 otherwise. On any
// error nothing is persisted.
func (s *DonationService) Create(ctx context.Context, d *model.Donation) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project projectModel.CharityProject
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", d.CharityProjectID).
			First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, projectDTO.MsgProjectNotFound)
			}
			return createFailed(err)
		}

		if err := tx.Create(d).Error; err != nil {
			log.Printf("[ERROR] insert donation (project %d): %v", d.CharityProjectID, err)
			return createFailed(err)
		}

		if _, err := RecomputeDonationAmount(tx, project.ID); err != nil {
			log.Printf("[ERROR] recompute donation_amount (project %d): %v", project.ID, err)
			return createFailed(err)
		}
		return nil
	})
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	// begin/commit failures
	return createFailed(err)
}

// RecomputeDonationAmount sets donation_amount to the full SUM of the
// project's donations, so any earlier drift is repaired. Run it inside the
// caller's transaction.
func RecomputeDonationAmount(tx *gorm.DB, projectID uint64) (int64, error) {
	var total int64
	if err := tx.
		Model(&model.Donation{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
		Where("charity_project_id = ?", projectID).
		Scan(&total).Error; err != nil {
		return 0, err
	}

	res := tx.
		Model(&projectModel.CharityProject{}).
		Where("id = ?", projectID).
		UpdateColumns(map[string]any{
			"donation_amount": total,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return total, nil
}
