package routes

import (
	"assetverse-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires the registration and login endpoints
func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController) {
	auth := app.Group("/api/auth")

	// POST /api/auth/register - create an employee or HR account
	auth.Post("/register", authController.Register)

	// POST /api/auth/login - exchange credentials for a JWT
	auth.Post("/login", authController.Login)
}
