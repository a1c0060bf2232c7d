package models

import (
	"time"

	"gorm.io/gorm"
)

// Affiliation statuses
const (
	AffiliationStatusActive   = "active"
	AffiliationStatusInactive = "inactive"
)

// Affiliation represents an employee's membership in an HR's company.
// At most one active affiliation exists per (employee, HR) pair. Records
// are deactivated rather than deleted so history is preserved.
type Affiliation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	EmployeeEmail   string    `json:"employee_email" gorm:"index;not null"`
	EmployeeName    string    `json:"employee_name"`
	HrEmail         string    `json:"hr_email" gorm:"index;not null"`
	CompanyName     string    `json:"company_name"`
	CompanyLogo     string    `json:"company_logo"`
	AffiliationDate time.Time `json:"affiliation_date"`
	Status          string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AffiliationWithAssets is an affiliation joined with the number of
// currently assigned assets for the employee. Used by the HR team view.
type AffiliationWithAssets struct {
	Affiliation
	AssetsCount int `json:"assets_count"`
}

// Colleague is an affiliation enriched with the colleague's date of birth
// for the employee-facing team view.
type Colleague struct {
	Affiliation
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// BeforeCreate sets the creation timestamps
func (a *Affiliation) BeforeCreate(tx *gorm.DB) error {
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the update timestamp
func (a *Affiliation) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
