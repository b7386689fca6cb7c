// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "charity_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// SetupRoutes mounts base routes and the versioned API.
func SetupRoutes(app *fiber.App, db *gorm.DB, loc *time.Location) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Mounting Charity routes under /v1...")
	v1 := app.Group("/v1")
	routeDetails.CharityRoutes(v1, db, loc)
}
