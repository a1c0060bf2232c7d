package controllers

import (
	"assetverse-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PackageController handles the public package catalog
type PackageController struct {
	DB *gorm.DB
}

// NewPackageController creates a new PackageController
func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db}
}

// GetPackages handles GET /api/packages
func (pc *PackageController) GetPackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := pc.DB.Order("price ASC").Find(&packages).Error; err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list packages",
		})
	}

	return c.JSON(packages)
}
