package controllers

import (
	"fmt"
	"strings"
	"time"

	"assetverse-backend/models"
	"assetverse-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentController handles the package upgrade checkout flow. The
// payment provider sits behind the CheckoutProvider interface; the core
// only records pending payments and applies confirmed ones.
type PaymentController struct {
	DB       *gorm.DB
	Provider services.CheckoutProvider
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(db *gorm.DB, provider services.CheckoutProvider) *PaymentController {
	return &PaymentController{DB: db, Provider: provider}
}

// CheckoutRequest is the body for starting a checkout
type CheckoutRequest struct {
	PackageName string `json:"package_name"`
}

// CreateCheckoutSession handles POST /api/payments/create-checkout-session
func (pc *PaymentController) CreateCheckoutSession(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.PackageName == "" {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "package_name is required",
		})
	}

	var pkg models.Package
	if err := pc.DB.Where("name = ?", req.PackageName).First(&pkg).Error; err != nil {
		return c.Status(404).JSON(Response{
			Success: false,
			Message: "Package not found",
		})
	}

	// Charge price * employee limit once (monthly)
	amount := pkg.Price * pkg.EmployeeLimit

	session, err := pc.Provider.CreateSession(
		fmt.Sprintf("%s Package (%d employees)", pkg.Name, pkg.EmployeeLimit),
		amount*100,
	)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to create checkout session",
		})
	}

	payment := models.Payment{
		HrEmail:       hrEmail,
		PackageName:   pkg.Name,
		EmployeeLimit: pkg.EmployeeLimit,
		Amount:        amount,
		TransactionID: session.ID,
		PaymentDate:   nil,
		Status:        models.PaymentStatusPending,
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to record payment",
		})
	}

	return c.JSON(fiber.Map{"url": session.URL, "session_id": session.ID})
}

// ConfirmPayment handles GET /api/payments/confirm?session_id=
func (pc *PaymentController) ConfirmPayment(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)
	sessionID := c.Query("session_id")

	if sessionID == "" {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "session_id is required",
		})
	}

	paid, err := pc.Provider.IsPaid(sessionID)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to verify payment",
		})
	}
	if !paid {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Payment not completed yet",
		})
	}

	var payment models.Payment
	err = pc.DB.Where("hr_email = ? AND transaction_id = ? AND status = ?",
		hrEmail, sessionID, models.PaymentStatusPending).First(&payment).Error
	if err != nil {
		return c.Status(404).JSON(Response{
			Success: false,
			Message: "Pending payment not found",
		})
	}

	now := time.Now()
	err = pc.DB.Model(&payment).Updates(map[string]interface{}{
		"status":       models.PaymentStatusCompleted,
		"payment_date": now,
	}).Error
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to update payment",
		})
	}

	// Raise the HR's subscription tier and employee limit. This is the
	// only writer of package_limit.
	err = pc.DB.Model(&models.User{}).
		Where("email = ?", hrEmail).
		Updates(map[string]interface{}{
			"subscription":  strings.ToLower(payment.PackageName),
			"package_limit": payment.EmployeeLimit,
		}).Error
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to update subscription",
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Payment confirmed and subscription updated",
		Data:    payment,
	})
}

// GetMyPayments handles GET /api/payments
func (pc *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	var payments []models.Payment
	err := pc.DB.
		Where("hr_email = ?", hrEmail).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list payments",
		})
	}

	return c.JSON(payments)
}
