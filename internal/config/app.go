package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	v1 "taskboard/internal/api/v1"
	"taskboard/internal/middleware"
)

// NewApp assembles the Fiber application: middleware stack and API routes.
func NewApp(d *Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "taskboard",
		ErrorHandler: middleware.FiberErrorHandler,
	})

	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		// Fiber refuses credentials together with a wildcard origin.
		AllowCredentials: d.Config.CORSOrigin != "*",
	}))
	app.Use(middleware.RateLimit(d.Config.RateLimitMax, d.Config.RateLimitWindow, d.LimiterStorage))

	v1.RegisterRoutes(app, d.Handler, d.Gateway)
	return app
}
