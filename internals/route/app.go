package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "charity_backend/docs"
	"charity_backend/internals/configs"
	helper "charity_backend/internals/helpers"
	middlewares "charity_backend/internals/middlewares"
)

// NewApp builds the Fiber app with middlewares and routes mounted.
func NewApp(cfg configs.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db, cfg.Location())
	return app
}
