package controllers

import (
	"strconv"

	"assetverse-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AffiliationController handles the employee-membership endpoints
type AffiliationController struct {
	DB           *gorm.DB
	Affiliations *services.AffiliationService
}

// NewAffiliationController creates a new AffiliationController
func NewAffiliationController(db *gorm.DB, affiliations *services.AffiliationService) *AffiliationController {
	return &AffiliationController{DB: db, Affiliations: affiliations}
}

// GetMyAffiliations handles GET /api/affiliations/me
func (ac *AffiliationController) GetMyAffiliations(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	affiliations, err := ac.Affiliations.ListMine(email)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list affiliations",
		})
	}

	return c.JSON(affiliations)
}

// GetHREmployeesWithAssets handles GET /api/affiliations/hr
func (ac *AffiliationController) GetHREmployeesWithAssets(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	employees, err := ac.Affiliations.ListEmployeesWithAssets(hrEmail)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list employees",
		})
	}

	return c.JSON(employees)
}

// RemoveEmployee handles PATCH /api/affiliations/:id/remove (HR only)
func (ac *AffiliationController) RemoveEmployee(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	affiliationID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid affiliation id",
		})
	}

	returnedCount, err := ac.Affiliations.Remove(hrEmail, uint(affiliationID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Employee removed from team. Active assets have been returned.",
		Data: fiber.Map{
			"affiliation_id":        affiliationID,
			"returned_assets_count": returnedCount,
		},
	})
}

// GetCompanyColleagues handles GET /api/affiliations/team?hrEmail=
// (employee only)
func (ac *AffiliationController) GetCompanyColleagues(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)
	hrEmail := c.Query("hrEmail")

	colleagues, err := ac.Affiliations.ListColleagues(email, hrEmail)
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(colleagues)
}
