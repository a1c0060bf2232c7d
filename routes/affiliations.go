package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAffiliationRoutes wires the employee-membership endpoints
func SetupAffiliationRoutes(app *fiber.App, affiliationController *controllers.AffiliationController) {
	affiliations := app.Group("/api/affiliations", utils.AuthMiddleware)

	// GET /api/affiliations/me - employee's active company memberships
	affiliations.Get("/me", utils.EmployeeOnly, affiliationController.GetMyAffiliations)

	// GET /api/affiliations/hr - HR's active employees with asset counts
	affiliations.Get("/hr", utils.HROnly, affiliationController.GetHREmployeesWithAssets)

	// GET /api/affiliations/team?hrEmail= - employee's view of colleagues
	affiliations.Get("/team", utils.EmployeeOnly, affiliationController.GetCompanyColleagues)

	// PATCH /api/affiliations/:id/remove - HR removes an employee
	affiliations.Patch("/:id/remove", utils.HROnly, affiliationController.RemoveEmployee)
}
