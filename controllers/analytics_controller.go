package controllers

import (
	"strconv"

	"assetverse-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnalyticsController handles the HR dashboard aggregates
type AnalyticsController struct {
	DB *gorm.DB
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// TypeDistribution is one slice of the asset type breakdown
type TypeDistribution struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TopRequestedAsset is one row of the most-requested ranking
type TopRequestedAsset struct {
	AssetID   uint   `json:"asset_id"`
	AssetName string `json:"asset_name"`
	Count     int    `json:"count"`
}

// HRSummary carries the dashboard card numbers
type HRSummary struct {
	TotalAssets         int64 `json:"total_assets"`
	ActiveEmployees     int   `json:"active_employees"`
	PackageLimit        int   `json:"package_limit"`
	TotalAssignedAssets int64 `json:"total_assigned_assets"`
	PendingRequests     int64 `json:"pending_requests"`
}

// GetAssetTypeDistribution handles
// GET /api/analytics/asset-type-distribution: total quantity per type
func (ac *AnalyticsController) GetAssetTypeDistribution(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	var rows []TypeDistribution
	err := ac.DB.Model(&models.Asset{}).
		Select("product_type as type, SUM(product_quantity) as count").
		Where("hr_email = ?", hrEmail).
		Group("product_type").
		Scan(&rows).Error
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to compute distribution",
		})
	}

	return c.JSON(rows)
}

// GetTopRequestedAssets handles GET /api/analytics/top-requested-assets
func (ac *AnalyticsController) GetTopRequestedAssets(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	limit, _ := strconv.Atoi(c.Query("limit", "5"))
	if limit < 1 {
		limit = 5
	}

	var rows []TopRequestedAsset
	err := ac.DB.Model(&models.Request{}).
		Select("asset_id, asset_name, COUNT(*) as count").
		Where("hr_email = ?", hrEmail).
		Group("asset_id, asset_name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to compute top requested assets",
		})
	}

	return c.JSON(rows)
}

// GetHRSummary handles GET /api/analytics/hr-summary
func (ac *AnalyticsController) GetHRSummary(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	var hrUser models.User
	if err := ac.DB.Where("email = ?", hrEmail).First(&hrUser).Error; err != nil {
		return c.Status(404).JSON(Response{
			Success: false,
			Message: "HR user not found",
		})
	}

	summary := HRSummary{
		ActiveEmployees: hrUser.CurrentEmployees,
		PackageLimit:    hrUser.PackageLimit,
	}

	ac.DB.Model(&models.Asset{}).
		Where("hr_email = ?", hrEmail).
		Count(&summary.TotalAssets)

	ac.DB.Model(&models.Assignment{}).
		Where("hr_email = ? AND status = ?", hrEmail, models.AssignmentStatusAssigned).
		Count(&summary.TotalAssignedAssets)

	ac.DB.Model(&models.Request{}).
		Where("hr_email = ? AND request_status = ?", hrEmail, models.RequestStatusPending).
		Count(&summary.PendingRequests)

	return c.JSON(summary)
}
