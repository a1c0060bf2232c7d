package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes wires the profile endpoints
func SetupUserRoutes(app *fiber.App, userController *controllers.UserController) {
	users := app.Group("/api/users", utils.AuthMiddleware)

	// GET /api/users/me - current user's profile
	users.Get("/me", userController.GetMe)

	// PATCH /api/users/me - update profile fields
	users.Patch("/me", userController.UpdateProfile)
}
