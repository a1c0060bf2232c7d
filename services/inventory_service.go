package services

import (
	"errors"
	"fmt"
	"strings"

	"assetverse-backend/models"

	"gorm.io/gorm"
)

// InventoryService owns asset records and their quantity counters
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// CreateAssetInput carries the fields for a new asset
type CreateAssetInput struct {
	ProductName     string
	ProductImage    string
	ProductType     string
	ProductQuantity int
}

// UpdateAssetInput carries optional asset edits. Nil fields are left
// untouched.
type UpdateAssetInput struct {
	ProductName     *string
	ProductImage    *string
	ProductType     *string
	ProductQuantity *int
}

// AssetPage is a paginated asset listing
type AssetPage struct {
	Data       []models.Asset `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// CreateAsset creates an asset owned by the HR with available = total
func (s *InventoryService) CreateAsset(hrEmail string, input CreateAssetInput) (*models.Asset, error) {
	if input.ProductName == "" || input.ProductType == "" {
		return nil, fmt.Errorf("%w: product name and type are required", ErrValidation)
	}
	if !models.ValidAssetType(input.ProductType) {
		return nil, fmt.Errorf("%w: product type must be Returnable or Non-returnable", ErrValidation)
	}
	if input.ProductQuantity < 0 {
		return nil, fmt.Errorf("%w: product quantity must be a non-negative number", ErrValidation)
	}

	// Company name is snapshotted from the owning HR
	var hrUser models.User
	if err := s.db.Where("email = ?", hrEmail).First(&hrUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: HR user", ErrNotFound)
		}
		return nil, err
	}

	asset := models.Asset{
		ProductName:       input.ProductName,
		ProductImage:      input.ProductImage,
		ProductType:       input.ProductType,
		ProductQuantity:   input.ProductQuantity,
		AvailableQuantity: input.ProductQuantity,
		HrEmail:           hrEmail,
		CompanyName:       hrUser.CompanyName,
	}

	if err := s.db.Create(&asset).Error; err != nil {
		return nil, err
	}

	return &asset, nil
}

// ListAssets returns the HR's assets with pagination, name search and
// type filtering
func (s *InventoryService) ListAssets(hrEmail string, page, limit int, search, assetType string) (*AssetPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := s.db.Model(&models.Asset{}).Where("hr_email = ?", hrEmail)

	if search != "" {
		query = query.Where("product_name LIKE ?", "%"+strings.TrimSpace(search)+"%")
	}
	if assetType != "" && assetType != "All" {
		query = query.Where("product_type = ?", assetType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var assets []models.Asset
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&assets).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &AssetPage{
		Data:       assets,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateAsset applies edits to an asset owned by the HR. A quantity edit
// recomputes availability as newTotal minus units currently in use and is
// rejected when the new total is below the units already assigned.
func (s *InventoryService) UpdateAsset(hrEmail string, assetID uint, input UpdateAssetInput) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.Where("id = ? AND hr_email = ?", assetID, hrEmail).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: asset not found or not owned by this HR", ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]interface{}{}

	if input.ProductName != nil && *input.ProductName != "" {
		updates["product_name"] = *input.ProductName
	}
	if input.ProductImage != nil && *input.ProductImage != "" {
		updates["product_image"] = *input.ProductImage
	}
	if input.ProductType != nil && *input.ProductType != "" {
		if !models.ValidAssetType(*input.ProductType) {
			return nil, fmt.Errorf("%w: product type must be Returnable or Non-returnable", ErrValidation)
		}
		updates["product_type"] = *input.ProductType
	}

	if input.ProductQuantity != nil {
		newTotal := *input.ProductQuantity
		if newTotal < 0 {
			return nil, fmt.Errorf("%w: product quantity must be a non-negative number", ErrValidation)
		}

		usedQuantity := asset.ProductQuantity - asset.AvailableQuantity
		if newTotal < usedQuantity {
			return nil, fmt.Errorf("%w: new quantity cannot be less than number of already assigned units", ErrConflict)
		}

		updates["product_quantity"] = newTotal
		updates["available_quantity"] = newTotal - usedQuantity
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no valid fields provided for update", ErrValidation)
	}

	if err := s.db.Model(&asset).Updates(updates).Error; err != nil {
		return nil, err
	}

	var updated models.Asset
	if err := s.db.First(&updated, asset.ID).Error; err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteAsset removes an asset owned by the HR. Existing assignments and
// requests keep their snapshot fields and are not touched.
func (s *InventoryService) DeleteAsset(hrEmail string, assetID uint) error {
	result := s.db.Where("id = ? AND hr_email = ?", assetID, hrEmail).Delete(&models.Asset{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: asset not found or not owned by this HR", ErrNotFound)
	}
	return nil
}

// Reserve atomically takes one unit of the asset. The decrement is a
// single conditional UPDATE so concurrent approvals of the same asset
// cannot lose updates or drive availability negative.
func (s *InventoryService) Reserve(tx *gorm.DB, assetID uint) error {
	result := tx.Model(&models.Asset{}).
		Where("id = ? AND available_quantity > 0", assetID).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the asset is gone or nothing is left
		var count int64
		if err := tx.Model(&models.Asset{}).Where("id = ?", assetID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: asset", ErrNotFound)
		}
		return fmt.Errorf("%w: no available quantity left for this asset", ErrOutOfStock)
	}
	return nil
}

// Release atomically puts one unit of the asset back. No upper clamp
// against the total is applied.
func (s *InventoryService) Release(tx *gorm.DB, assetID uint) error {
	return tx.Model(&models.Asset{}).
		Where("id = ?", assetID).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity + 1")).Error
}
