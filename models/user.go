package models

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Roles a user can hold in the system
const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
)

// Subscription tiers for HR accounts
const (
	SubscriptionBasic    = "basic"
	SubscriptionStandard = "standard"
	SubscriptionPremium  = "premium"
)

// User represents an employee or HR manager account
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // never serialized
	Role         string    `json:"role" gorm:"not null;default:'employee'"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	ProfileImage string    `json:"profile_image" gorm:"default:''"`

	// HR-only fields. PackageLimit is raised by the payment flow only;
	// CurrentEmployees moves with affiliation creation/removal.
	CompanyName      string `json:"company_name" gorm:"default:''"`
	CompanyLogo      string `json:"company_logo" gorm:"default:''"`
	PackageLimit     int    `json:"package_limit" gorm:"default:5"`
	CurrentEmployees int    `json:"current_employees" gorm:"default:0"`
	Subscription     string `json:"subscription" gorm:"default:''"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitDB opens the database connection. PostgreSQL is used when
// DATABASE_URL is set, SQLite otherwise.
func InitDB() (*gorm.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")

	if databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open("assetverse.db"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// BeforeCreate sets the creation timestamps
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the update timestamp
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
