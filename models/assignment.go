package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment statuses. An assignment only ever moves assigned -> returned.
const (
	AssignmentStatusAssigned = "assigned"
	AssignmentStatusReturned = "returned"
)

// Assignment represents an asset handed to an employee. It is created
// exclusively by request approval. Asset name, image and type are
// snapshots taken at approval time.
type Assignment struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	AssetID        uint       `json:"asset_id" gorm:"index;not null"`
	AssetName      string     `json:"asset_name"`
	AssetImage     string     `json:"asset_image"`
	AssetType      string     `json:"asset_type"`
	EmployeeEmail  string     `json:"employee_email" gorm:"index;not null"`
	EmployeeName   string     `json:"employee_name"`
	HrEmail        string     `json:"hr_email" gorm:"index;not null"`
	CompanyName    string     `json:"company_name"`
	AssignmentDate time.Time  `json:"assignment_date"`
	ReturnDate     *time.Time `json:"return_date"`
	Status         string     `json:"status" gorm:"not null;default:'assigned'"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BeforeCreate sets the creation timestamps
func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the update timestamp
func (a *Assignment) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
