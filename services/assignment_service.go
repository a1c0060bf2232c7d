package services

import (
	"errors"
	"fmt"
	"time"

	"assetverse-backend/models"

	"gorm.io/gorm"
)

// AssignmentService owns assignment records: created on request approval,
// closed when the employee returns the asset or HR removes the employee
type AssignmentService struct {
	db        *gorm.DB
	inventory *InventoryService
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(db *gorm.DB, inventory *InventoryService) *AssignmentService {
	return &AssignmentService{db: db, inventory: inventory}
}

// Create inserts an assignment in the assigned state, snapshotting the
// asset's name, image and type. Called inside the approval transaction.
func (s *AssignmentService) Create(tx *gorm.DB, asset *models.Asset, employeeEmail, employeeName, hrEmail, companyName string) (*models.Assignment, error) {
	assignment := models.Assignment{
		AssetID:        asset.ID,
		AssetName:      asset.ProductName,
		AssetImage:     asset.ProductImage,
		AssetType:      asset.ProductType,
		EmployeeEmail:  employeeEmail,
		EmployeeName:   employeeName,
		HrEmail:        hrEmail,
		CompanyName:    companyName,
		AssignmentDate: time.Now(),
		ReturnDate:     nil,
		Status:         models.AssignmentStatusAssigned,
	}

	if err := tx.Create(&assignment).Error; err != nil {
		return nil, err
	}

	return &assignment, nil
}

// Return flips an assignment to returned and releases one unit of the
// asset back into inventory. Only the owning employee may return, only
// assigned records can transition, and only Returnable assets qualify.
// The originating request is flipped to returned when one can still be
// matched; its absence is not an error.
func (s *AssignmentService) Return(employeeEmail string, assignmentID uint) (*models.Assignment, error) {
	var updated models.Assignment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.Assignment
		if err := tx.First(&assignment, assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: assigned asset", ErrNotFound)
			}
			return err
		}

		if assignment.EmployeeEmail != employeeEmail {
			return fmt.Errorf("%w: you are not authorized to return this asset", ErrNotAuthorized)
		}

		if assignment.Status != models.AssignmentStatusAssigned {
			return fmt.Errorf("%w: only currently assigned assets can be returned", ErrConflict)
		}

		if assignment.AssetType != models.AssetTypeReturnable {
			return fmt.Errorf("%w: this asset is not marked as returnable", ErrValidation)
		}

		now := time.Now()
		err := tx.Model(&assignment).Updates(map[string]interface{}{
			"status":      models.AssignmentStatusReturned,
			"return_date": now,
		}).Error
		if err != nil {
			return err
		}

		if err := s.inventory.Release(tx, assignment.AssetID); err != nil {
			return err
		}

		// Best effort: requests created before this linkage existed may
		// not match, which is fine. Only the oldest approved request is
		// flipped so siblings for the same asset stay linked to their
		// own open assignments.
		var linked models.Request
		err = tx.Where("requester_email = ? AND asset_id = ? AND request_status = ?",
			assignment.EmployeeEmail, assignment.AssetID, models.RequestStatusApproved).
			Order("request_date ASC").
			First(&linked).Error
		if err == nil {
			err = tx.Model(&linked).Updates(map[string]interface{}{
				"request_status": models.RequestStatusReturned,
				"approval_date":  now,
				"processed_by":   employeeEmail,
			}).Error
			if err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.First(&updated, assignment.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// BulkReturnForEmployee returns every assigned record for the
// (employee, HR) pair, releasing one unit of inventory per record.
// Used by the employee-removal cascade. Returns the count processed.
func (s *AssignmentService) BulkReturnForEmployee(tx *gorm.DB, employeeEmail, hrEmail string) (int, error) {
	var assigned []models.Assignment
	err := tx.Where("employee_email = ? AND hr_email = ? AND status = ?",
		employeeEmail, hrEmail, models.AssignmentStatusAssigned).
		Find(&assigned).Error
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, a := range assigned {
		err := tx.Model(&models.Assignment{}).
			Where("id = ?", a.ID).
			Updates(map[string]interface{}{
				"status":      models.AssignmentStatusReturned,
				"return_date": now,
			}).Error
		if err != nil {
			return 0, err
		}

		if err := s.inventory.Release(tx, a.AssetID); err != nil {
			return 0, err
		}
	}

	return len(assigned), nil
}

// ListForEmployee returns the employee's assignments, newest first
func (s *AssignmentService) ListForEmployee(employeeEmail string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.
		Where("employee_email = ?", employeeEmail).
		Order("assignment_date DESC").
		Find(&assignments).Error
	return assignments, err
}

// ListForHR returns every assignment under the HR, newest first
func (s *AssignmentService) ListForHR(hrEmail string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.
		Where("hr_email = ?", hrEmail).
		Order("assignment_date DESC").
		Find(&assignments).Error
	return assignments, err
}
