package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Package represents a subscription package an HR can purchase to raise
// their employee limit.
type Package struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"uniqueIndex;not null"`
	EmployeeLimit int       `json:"employee_limit" gorm:"not null"`
	Price         int       `json:"price" gorm:"not null"` // USD per employee per month
	Features      string    `json:"features" gorm:"type:text;default:''"`
	CreatedAt     time.Time `json:"created_at"`
}

// Payment represents a checkout attempt for a package. It is recorded as
// pending when the session is created and completed on confirmation.
type Payment struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	HrEmail       string     `json:"hr_email" gorm:"index;not null"`
	PackageName   string     `json:"package_name" gorm:"not null"`
	EmployeeLimit int        `json:"employee_limit" gorm:"not null"`
	Amount        int        `json:"amount" gorm:"not null"` // USD
	TransactionID string     `json:"transaction_id" gorm:"uniqueIndex;not null"`
	PaymentDate   *time.Time `json:"payment_date"`
	Status        string     `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time  `json:"created_at"`
}

// BeforeCreate sets the creation timestamp
func (p *Package) BeforeCreate(tx *gorm.DB) error {
	p.CreatedAt = time.Now()
	return nil
}

// BeforeCreate sets the creation timestamp
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	p.CreatedAt = time.Now()
	return nil
}
