package models

import (
	"time"

	"gorm.io/gorm"
)

// Asset types
const (
	AssetTypeReturnable    = "Returnable"
	AssetTypeNonReturnable = "Non-returnable"
)

// Asset represents a company-owned asset managed by an HR account.
// AvailableQuantity never exceeds ProductQuantity and never goes negative;
// it is mutated only by reservation (approval), release (return) and
// quantity edits.
type Asset struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ProductName       string    `json:"product_name" gorm:"not null;size:255"`
	ProductImage      string    `json:"product_image" gorm:"default:''"`
	ProductType       string    `json:"product_type" gorm:"not null"`
	ProductQuantity   int       `json:"product_quantity" gorm:"not null;default:0"`
	AvailableQuantity int       `json:"available_quantity" gorm:"not null;default:0"`
	HrEmail           string    `json:"hr_email" gorm:"index;not null"`
	CompanyName       string    `json:"company_name" gorm:"default:''"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValidAssetType reports whether t is one of the two supported asset types
func ValidAssetType(t string) bool {
	return t == AssetTypeReturnable || t == AssetTypeNonReturnable
}

// BeforeCreate sets the creation timestamps
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the update timestamp
func (a *Asset) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
