package models

import (
	"time"

	"gorm.io/gorm"
)

// Request statuses. Transitions are one-directional:
// pending -> approved | rejected, approved -> returned.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
	RequestStatusReturned = "returned"
)

// Request represents an employee's request for an asset. Asset name and
// type are snapshotted at creation time and not kept in sync with later
// asset edits.
type Request struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	AssetID        uint       `json:"asset_id" gorm:"index;not null"`
	AssetName      string     `json:"asset_name"`
	AssetType      string     `json:"asset_type"`
	RequesterName  string     `json:"requester_name"`
	RequesterEmail string     `json:"requester_email" gorm:"index;not null"`
	HrEmail        string     `json:"hr_email" gorm:"index;not null"`
	CompanyName    string     `json:"company_name"`
	RequestDate    time.Time  `json:"request_date"`
	ApprovalDate   *time.Time `json:"approval_date"`
	RequestStatus  string     `json:"request_status" gorm:"not null;default:'pending'"`
	Note           string     `json:"note" gorm:"type:text;default:''"`
	ProcessedBy    string     `json:"processed_by" gorm:"default:''"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BeforeCreate sets the creation timestamps
func (r *Request) BeforeCreate(tx *gorm.DB) error {
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the update timestamp
func (r *Request) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
