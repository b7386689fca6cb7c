// file: internals/route/details/charity_routes.go
package details

import (
	"time"

	donationRoutes "charity_backend/internals/features/charity/donations/routes"
	projectRoutes "charity_backend/internals/features/charity/projects/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CharityRoutes: public projects + donations (no auth in this service).
func CharityRoutes(v1 fiber.Router, db *gorm.DB, loc *time.Location) {
	projectRoutes.CharityProjectRoutes(v1, db, loc)
	donationRoutes.DonationRoutes(v1, db, loc)
}
