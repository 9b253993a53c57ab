package router

import (
	"agent-dashboard/handlers"
	"agent-dashboard/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupRoutes wires the dashboard API onto a fiber app.
func SetupRoutes(app *fiber.App, dashboard *handlers.Dashboard, jwtSecret string) {
	api := app.Group("/", logger.New(), middleware.RequestID())
	api.Get("/health", handlers.Health)

	//Login
	login := api.Group("/login")
	login.Post("/", handlers.Login)

	//Dashboard
	dash := api.Group("/dashboard", middleware.Authorize(jwtSecret))
	dash.Get("/summary", dashboard.GetSummary)
	dash.Get("/pending", dashboard.GetPending)
	dash.Post("/refresh", dashboard.Refresh)
}
