package routes

import (
	"time"

	projectController "charity_backend/internals/features/charity/projects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CharityProjectRoutes: public, read-only.
func CharityProjectRoutes(api fiber.Router, db *gorm.DB, loc *time.Location) {
	ctrl := projectController.NewCharityProjectController(db, loc)

	grp := api.Group("/charity-projects")
	grp.Get("/", ctrl.List)
	grp.Get("/:slug", ctrl.GetBySlug)
}
