package controllers

import (
	"strconv"

	"assetverse-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssignmentController handles the assigned-asset endpoints
type AssignmentController struct {
	DB          *gorm.DB
	Assignments *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(db *gorm.DB, assignments *services.AssignmentService) *AssignmentController {
	return &AssignmentController{DB: db, Assignments: assignments}
}

// GetMyAssignedAssets handles GET /api/assigned-assets/me
func (ac *AssignmentController) GetMyAssignedAssets(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	assignments, err := ac.Assignments.ListForEmployee(email)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list assigned assets",
		})
	}

	return c.JSON(assignments)
}

// GetHRAssignedAssets handles GET /api/assigned-assets/hr
func (ac *AssignmentController) GetHRAssignedAssets(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	assignments, err := ac.Assignments.ListForHR(hrEmail)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list assigned assets",
		})
	}

	return c.JSON(assignments)
}

// ReturnAssignedAsset handles PATCH /api/assigned-assets/:id/return
// (employee only)
func (ac *AssignmentController) ReturnAssignedAsset(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	assignmentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid assignment id",
		})
	}

	assignment, err := ac.Assignments.Return(email, uint(assignmentID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Asset returned successfully",
		Data:    assignment,
	})
}
