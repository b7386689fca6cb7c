package routes

import (
	"time"

	donationController "charity_backend/internals/features/charity/donations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DonationRoutes defines the routes for donations
func DonationRoutes(api fiber.Router, db *gorm.DB, loc *time.Location) {
	donationCtrl := donationController.NewDonationController(db, loc)

	api.Post("/donate", donationCtrl.CreateDonation) // record donation + recompute project total
}
