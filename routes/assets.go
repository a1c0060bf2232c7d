package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAssetRoutes wires the HR asset inventory endpoints
func SetupAssetRoutes(app *fiber.App, assetController *controllers.AssetController) {
	assets := app.Group("/api/assets", utils.AuthMiddleware, utils.HROnly)

	// POST /api/assets - create an asset
	assets.Post("/", assetController.CreateAsset)

	// GET /api/assets - list assets with pagination, search and type filter
	assets.Get("/", assetController.GetAssets)

	// PATCH /api/assets/:id - edit an asset
	assets.Patch("/:id", assetController.UpdateAsset)

	// DELETE /api/assets/:id - delete an asset
	assets.Delete("/:id", assetController.DeleteAsset)
}
