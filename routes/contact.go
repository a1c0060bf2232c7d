package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes wires the contact form endpoints
func SetupContactRoutes(app *fiber.App, contactController *controllers.ContactController) {
	contact := app.Group("/api/contact")

	// POST /api/contact - public form submission
	contact.Post("/", contactController.SubmitContactForm)

	// GET /api/contact - list submissions (HR only)
	contact.Get("/", utils.AuthMiddleware, utils.HROnly, contactController.GetContactSubmissions)

	// PATCH /api/contact/:id/status - update submission status (HR only)
	contact.Patch("/:id/status", utils.AuthMiddleware, utils.HROnly, contactController.UpdateContactStatus)
}
