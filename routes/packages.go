package routes

import (
	"assetverse-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupPackageRoutes wires the public package catalog endpoint
func SetupPackageRoutes(app *fiber.App, packageController *controllers.PackageController) {
	packages := app.Group("/api/packages")

	// GET /api/packages - list packages sorted by price
	packages.Get("/", packageController.GetPackages)
}
