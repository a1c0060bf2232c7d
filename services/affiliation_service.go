package services

import (
	"errors"
	"fmt"
	"time"

	"assetverse-backend/models"

	"gorm.io/gorm"
)

// AffiliationService owns employee-to-company memberships and enforces
// the HR's package employee limit
type AffiliationService struct {
	db          *gorm.DB
	assignments *AssignmentService
}

// NewAffiliationService creates a new affiliation service
func NewAffiliationService(db *gorm.DB, assignments *AssignmentService) *AffiliationService {
	return &AffiliationService{db: db, assignments: assignments}
}

// EnsureActive returns the active affiliation for (employee, HR),
// creating one if absent. Creation checks the HR's package limit and
// increments their employee counter. The created flag tells callers
// whether a new membership came into existence.
func (s *AffiliationService) EnsureActive(tx *gorm.DB, employeeEmail, employeeName, hrEmail string) (*models.Affiliation, bool, error) {
	var existing models.Affiliation
	err := tx.Where("employee_email = ? AND hr_email = ? AND status = ?",
		employeeEmail, hrEmail, models.AffiliationStatusActive).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	var hrUser models.User
	if err := tx.Where("email = ?", hrEmail).First(&hrUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("%w: HR user", ErrNotFound)
		}
		return nil, false, err
	}

	if hrUser.CurrentEmployees >= hrUser.PackageLimit {
		return nil, false, fmt.Errorf("%w: please upgrade your package to add more employees", ErrLimitExceeded)
	}

	affiliation := models.Affiliation{
		EmployeeEmail:   employeeEmail,
		EmployeeName:    employeeName,
		HrEmail:         hrEmail,
		CompanyName:     hrUser.CompanyName,
		CompanyLogo:     hrUser.CompanyLogo,
		AffiliationDate: time.Now(),
		Status:          models.AffiliationStatusActive,
	}

	if err := tx.Create(&affiliation).Error; err != nil {
		return nil, false, err
	}

	err = tx.Model(&models.User{}).
		Where("id = ?", hrUser.ID).
		UpdateColumn("current_employees", gorm.Expr("current_employees + 1")).Error
	if err != nil {
		return nil, false, err
	}

	return &affiliation, true, nil
}

// Remove deactivates an affiliation owned by the HR, returns every asset
// still assigned to the employee and decrements the HR's employee counter
// by one (floored at zero). Re-invoking on an already inactive affiliation
// fails with a conflict so retries never double-decrement. Returns the
// number of assets returned.
func (s *AffiliationService) Remove(hrEmail string, affiliationID uint) (int, error) {
	var returnedCount int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var affiliation models.Affiliation
		if err := tx.First(&affiliation, affiliationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: affiliation", ErrNotFound)
			}
			return err
		}

		if affiliation.HrEmail != hrEmail {
			return fmt.Errorf("%w: you are not authorized to remove this employee", ErrNotAuthorized)
		}

		if affiliation.Status == models.AffiliationStatusInactive {
			return fmt.Errorf("%w: employee is already inactive for this company", ErrConflict)
		}

		err := tx.Model(&affiliation).
			UpdateColumn("status", models.AffiliationStatusInactive).Error
		if err != nil {
			return err
		}

		count, err := s.assignments.BulkReturnForEmployee(tx, affiliation.EmployeeEmail, hrEmail)
		if err != nil {
			return err
		}
		returnedCount = count

		// Conditional decrement so the counter never goes below zero
		return tx.Model(&models.User{}).
			Where("email = ? AND current_employees > 0", hrEmail).
			UpdateColumn("current_employees", gorm.Expr("current_employees - 1")).Error
	})
	if err != nil {
		return 0, err
	}

	return returnedCount, nil
}

// ListMine returns the employee's active affiliations, newest first
func (s *AffiliationService) ListMine(employeeEmail string) ([]models.Affiliation, error) {
	var affiliations []models.Affiliation
	err := s.db.
		Where("employee_email = ? AND status = ?", employeeEmail, models.AffiliationStatusActive).
		Order("affiliation_date DESC").
		Find(&affiliations).Error
	return affiliations, err
}

// ListEmployeesWithAssets returns the HR's active affiliations together
// with each employee's count of currently assigned assets
func (s *AffiliationService) ListEmployeesWithAssets(hrEmail string) ([]models.AffiliationWithAssets, error) {
	var affiliations []models.Affiliation
	err := s.db.
		Where("hr_email = ? AND status = ?", hrEmail, models.AffiliationStatusActive).
		Order("affiliation_date DESC").
		Find(&affiliations).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.AffiliationWithAssets, 0, len(affiliations))
	if len(affiliations) == 0 {
		return result, nil
	}

	type assetCount struct {
		EmployeeEmail string
		Count         int
	}
	var counts []assetCount
	err = s.db.Model(&models.Assignment{}).
		Select("employee_email, COUNT(*) as count").
		Where("hr_email = ? AND status = ?", hrEmail, models.AssignmentStatusAssigned).
		Group("employee_email").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countMap := make(map[string]int, len(counts))
	for _, c := range counts {
		countMap[c.EmployeeEmail] = c.Count
	}

	for _, a := range affiliations {
		result = append(result, models.AffiliationWithAssets{
			Affiliation: a,
			AssetsCount: countMap[a.EmployeeEmail],
		})
	}

	return result, nil
}

// ListColleagues returns the active affiliations sharing the caller's
// company under the given HR. The caller must hold an active affiliation
// with that HR themselves.
func (s *AffiliationService) ListColleagues(employeeEmail, hrEmail string) ([]models.Colleague, error) {
	if hrEmail == "" {
		return nil, fmt.Errorf("%w: hrEmail is required", ErrValidation)
	}

	var mine models.Affiliation
	err := s.db.Where("employee_email = ? AND hr_email = ? AND status = ?",
		employeeEmail, hrEmail, models.AffiliationStatusActive).First(&mine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: you are not affiliated with this company and cannot view its team", ErrNotAuthorized)
		}
		return nil, err
	}

	var colleagues []models.Affiliation
	err = s.db.
		Where("hr_email = ? AND company_name = ? AND status = ?",
			hrEmail, mine.CompanyName, models.AffiliationStatusActive).
		Order("employee_name ASC").
		Find(&colleagues).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.Colleague, 0, len(colleagues))
	if len(colleagues) == 0 {
		return result, nil
	}

	emails := make([]string, 0, len(colleagues))
	for _, a := range colleagues {
		emails = append(emails, a.EmployeeEmail)
	}

	var users []models.User
	if err := s.db.Where("email IN ?", emails).Find(&users).Error; err != nil {
		return nil, err
	}

	dobMap := make(map[string]*time.Time, len(users))
	for i := range users {
		if users[i].DateOfBirth.IsZero() {
			continue
		}
		dob := users[i].DateOfBirth
		dobMap[users[i].Email] = &dob
	}

	for _, a := range colleagues {
		result = append(result, models.Colleague{
			Affiliation: a,
			DateOfBirth: dobMap[a.EmployeeEmail],
		})
	}

	return result, nil
}
