package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"assetverse-backend/models"

	"gorm.io/gorm"
)

// RequestService owns request records and drives the
// pending -> approved/rejected lifecycle
type RequestService struct {
	db           *gorm.DB
	inventory    *InventoryService
	assignments  *AssignmentService
	affiliations *AffiliationService
}

// NewRequestService creates a new request service
func NewRequestService(db *gorm.DB, inventory *InventoryService, assignments *AssignmentService, affiliations *AffiliationService) *RequestService {
	return &RequestService{
		db:           db,
		inventory:    inventory,
		assignments:  assignments,
		affiliations: affiliations,
	}
}

// ApprovalResult is what Approve hands back to the boundary layer
type ApprovalResult struct {
	Request               *models.Request `json:"request"`
	NewAffiliationCreated bool            `json:"new_affiliation_created"`
}

// Create records a pending request by an employee for an asset. The asset
// must exist and have availability; no unit is reserved until approval.
func (s *RequestService) Create(requesterEmail, requesterName string, assetID uint, note string) (*models.Request, error) {
	var asset models.Asset
	if err := s.db.First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: asset", ErrNotFound)
		}
		return nil, err
	}

	if asset.AvailableQuantity <= 0 {
		return nil, fmt.Errorf("%w: this asset is currently out of stock", ErrOutOfStock)
	}

	request := models.Request{
		AssetID:        asset.ID,
		AssetName:      asset.ProductName,
		AssetType:      asset.ProductType,
		RequesterName:  requesterName,
		RequesterEmail: requesterEmail,
		HrEmail:        asset.HrEmail,
		CompanyName:    asset.CompanyName,
		RequestDate:    time.Now(),
		ApprovalDate:   nil,
		RequestStatus:  models.RequestStatusPending,
		Note:           note,
		ProcessedBy:    "",
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// Approve moves a pending request to approved. In one transaction it
// reserves a unit of the asset, ensures the employee's affiliation
// (enforcing the HR's package limit), creates the assignment and marks
// the request. A failure at any step rolls back every prior one, so a
// limit rejection leaves asset availability untouched.
func (s *RequestService) Approve(hrEmail string, requestID uint) (*ApprovalResult, error) {
	var result ApprovalResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var request models.Request
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: request", ErrNotFound)
			}
			return err
		}

		if request.HrEmail != hrEmail {
			return fmt.Errorf("%w: you are not authorized to process this request", ErrNotAuthorized)
		}

		if request.RequestStatus != models.RequestStatusPending {
			return fmt.Errorf("%w: only pending requests can be approved", ErrConflict)
		}

		if err := s.inventory.Reserve(tx, request.AssetID); err != nil {
			return err
		}

		_, created, err := s.affiliations.EnsureActive(tx, request.RequesterEmail, request.RequesterName, hrEmail)
		if err != nil {
			return err
		}
		result.NewAffiliationCreated = created

		var asset models.Asset
		if err := tx.First(&asset, request.AssetID).Error; err != nil {
			return err
		}

		_, err = s.assignments.Create(tx, &asset, request.RequesterEmail, request.RequesterName, hrEmail, request.CompanyName)
		if err != nil {
			return err
		}

		now := time.Now()
		err = tx.Model(&request).Updates(map[string]interface{}{
			"request_status": models.RequestStatusApproved,
			"approval_date":  now,
			"processed_by":   hrEmail,
		}).Error
		if err != nil {
			return err
		}

		var updated models.Request
		if err := tx.First(&updated, request.ID).Error; err != nil {
			return err
		}
		result.Request = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Reject moves a pending request to rejected. No inventory side effect.
func (s *RequestService) Reject(hrEmail string, requestID uint) (*models.Request, error) {
	var request models.Request
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request", ErrNotFound)
		}
		return nil, err
	}

	if request.HrEmail != hrEmail {
		return nil, fmt.Errorf("%w: you are not authorized to process this request", ErrNotAuthorized)
	}

	if request.RequestStatus != models.RequestStatusPending {
		return nil, fmt.Errorf("%w: only pending requests can be rejected", ErrConflict)
	}

	err := s.db.Model(&request).Updates(map[string]interface{}{
		"request_status": models.RequestStatusRejected,
		"approval_date":  nil,
		"processed_by":   hrEmail,
	}).Error
	if err != nil {
		return nil, err
	}

	var updated models.Request
	if err := s.db.First(&updated, request.ID).Error; err != nil {
		return nil, err
	}

	return &updated, nil
}

// ListForHR returns the HR's requests, optionally filtered by status,
// newest first
func (s *RequestService) ListForHR(hrEmail, status string) ([]models.Request, error) {
	query := s.db.Where("hr_email = ?", hrEmail)

	if status != "" && status != "All" {
		query = query.Where("request_status = ?", strings.ToLower(status))
	}

	var requests []models.Request
	err := query.Order("request_date DESC").Find(&requests).Error
	return requests, err
}

// ListForEmployee returns the employee's own requests, newest first
func (s *RequestService) ListForEmployee(requesterEmail string) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.
		Where("requester_email = ?", requesterEmail).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}
