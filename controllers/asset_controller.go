package controllers

import (
	"strconv"

	"assetverse-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssetController handles the HR-facing asset inventory endpoints
type AssetController struct {
	DB        *gorm.DB
	Inventory *services.InventoryService
}

// NewAssetController creates a new AssetController
func NewAssetController(db *gorm.DB, inventory *services.InventoryService) *AssetController {
	return &AssetController{DB: db, Inventory: inventory}
}

// CreateAssetRequest is the body for asset creation
type CreateAssetRequest struct {
	ProductName     string `json:"product_name"`
	ProductImage    string `json:"product_image"`
	ProductType     string `json:"product_type"`
	ProductQuantity int    `json:"product_quantity"`
}

// UpdateAssetRequest is the body for asset edits; omitted fields are left
// untouched
type UpdateAssetRequest struct {
	ProductName     *string `json:"product_name"`
	ProductImage    *string `json:"product_image"`
	ProductType     *string `json:"product_type"`
	ProductQuantity *int    `json:"product_quantity"`
}

// CreateAsset handles POST /api/assets
func (ac *AssetController) CreateAsset(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	var req CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	asset, err := ac.Inventory.CreateAsset(hrEmail, services.CreateAssetInput{
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		ProductType:     req.ProductType,
		ProductQuantity: req.ProductQuantity,
	})
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.Status(201).JSON(Response{
		Success: true,
		Message: "Asset created",
		Data:    asset,
	})
}

// GetAssets handles GET /api/assets with page/limit/search/type query
// parameters
func (ac *AssetController) GetAssets(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search")
	assetType := c.Query("type", "All")

	result, err := ac.Inventory.ListAssets(hrEmail, page, limit, search, assetType)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list assets",
		})
	}

	return c.JSON(result)
}

// UpdateAsset handles PATCH /api/assets/:id
func (ac *AssetController) UpdateAsset(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	assetID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid asset id",
		})
	}

	var req UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	asset, err := ac.Inventory.UpdateAsset(hrEmail, uint(assetID), services.UpdateAssetInput{
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		ProductType:     req.ProductType,
		ProductQuantity: req.ProductQuantity,
	})
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Asset updated",
		Data:    asset,
	})
}

// DeleteAsset handles DELETE /api/assets/:id
func (ac *AssetController) DeleteAsset(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	assetID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid asset id",
		})
	}

	if err := ac.Inventory.DeleteAsset(hrEmail, uint(assetID)); err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Asset deleted",
	})
}
