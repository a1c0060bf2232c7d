package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact submission statuses
const (
	ContactStatusUnread  = "unread"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact represents a contact form submission
type Contact struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Email     string     `json:"email" gorm:"not null"`
	Subject   string     `json:"subject" gorm:"not null"`
	Message   string     `json:"message" gorm:"type:text;not null"`
	Status    string     `json:"status" gorm:"not null;default:'unread'"`
	RepliedAt *time.Time `json:"replied_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// BeforeCreate sets the creation timestamp
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	c.CreatedAt = time.Now()
	return nil
}
