package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupRequestRoutes wires the asset request lifecycle endpoints
func SetupRequestRoutes(app *fiber.App, requestController *controllers.RequestController) {
	requests := app.Group("/api/requests", utils.AuthMiddleware)

	// POST /api/requests - employee creates a request
	requests.Post("/", utils.EmployeeOnly, requestController.CreateRequest)

	// GET /api/requests/me - employee's own requests
	requests.Get("/me", utils.EmployeeOnly, requestController.GetMyRequests)

	// GET /api/requests/hr?status= - requests addressed to this HR
	requests.Get("/hr", utils.HROnly, requestController.GetHRRequests)

	// PATCH /api/requests/:id/approve - approve a pending request
	requests.Patch("/:id/approve", utils.HROnly, requestController.ApproveRequest)

	// PATCH /api/requests/:id/reject - reject a pending request
	requests.Patch("/:id/reject", utils.HROnly, requestController.RejectRequest)
}
