package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes wires the assigned-asset endpoints
func SetupAssignmentRoutes(app *fiber.App, assignmentController *controllers.AssignmentController) {
	assigned := app.Group("/api/assigned-assets", utils.AuthMiddleware)

	// GET /api/assigned-assets/me - employee's assignments
	assigned.Get("/me", utils.EmployeeOnly, assignmentController.GetMyAssignedAssets)

	// GET /api/assigned-assets/hr - every assignment under this HR
	assigned.Get("/hr", utils.HROnly, assignmentController.GetHRAssignedAssets)

	// PATCH /api/assigned-assets/:id/return - employee returns an asset
	assigned.Patch("/:id/return", utils.EmployeeOnly, assignmentController.ReturnAssignedAsset)
}
