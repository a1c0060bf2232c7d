package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes wires the HR dashboard aggregates
func SetupAnalyticsRoutes(app *fiber.App, analyticsController *controllers.AnalyticsController) {
	analytics := app.Group("/api/analytics", utils.AuthMiddleware, utils.HROnly)

	// GET /api/analytics/asset-type-distribution - quantity per asset type
	analytics.Get("/asset-type-distribution", analyticsController.GetAssetTypeDistribution)

	// GET /api/analytics/top-requested-assets?limit= - most requested assets
	analytics.Get("/top-requested-assets", analyticsController.GetTopRequestedAssets)

	// GET /api/analytics/hr-summary - dashboard card numbers
	analytics.Get("/hr-summary", analyticsController.GetHRSummary)
}
