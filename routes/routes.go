package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Filter widget options (date bounds, regions, categories)
	api.Get("/filters", handlers.HandleGetFilterOptions)

	// --- Overview page ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/overview", handlers.HandleGetDashboardOverview)
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)
	dashboard.Get("/monthly-sales", handlers.HandleGetMonthlySales)
	dashboard.Get("/top-products", handlers.HandleGetTopProducts)
	dashboard.Get("/category-share", handlers.HandleGetCategoryShare)
	dashboard.Get("/payment-methods", handlers.HandleGetPaymentMethodTotals)
	dashboard.Get("/regions", handlers.HandleGetRegionTotals)
	dashboard.Get("/records", handlers.HandleGetRecords)

	// --- Prediction page ---
	api.Post("/predict", handlers.HandlePredictSales)

	// --- Extras ---
	api.Post("/insights", handlers.HandleGenerateInsights)
	api.Get("/export", handlers.HandleExportSales)
}
