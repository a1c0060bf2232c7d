package routes

import (
	"assetverse-backend/controllers"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes wires the package upgrade checkout endpoints
func SetupPaymentRoutes(app *fiber.App, paymentController *controllers.PaymentController) {
	payments := app.Group("/api/payments", utils.AuthMiddleware, utils.HROnly)

	// POST /api/payments/create-checkout-session - start a checkout
	payments.Post("/create-checkout-session", paymentController.CreateCheckoutSession)

	// GET /api/payments/confirm?session_id= - confirm a paid session
	payments.Get("/confirm", paymentController.ConfirmPayment)

	// GET /api/payments - HR's own payment history
	payments.Get("/", paymentController.GetMyPayments)
}
