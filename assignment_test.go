package main

import (
	"fmt"
	"testing"

	"assetverse-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createAssignedAsset(db *gorm.DB, employee *models.User, asset *models.Asset) *models.Assignment {
	assignment := &models.Assignment{
		AssetID:       asset.ID,
		AssetName:     asset.ProductName,
		AssetImage:    asset.ProductImage,
		AssetType:     asset.ProductType,
		EmployeeEmail: employee.Email,
		EmployeeName:  employee.Name,
		HrEmail:       asset.HrEmail,
		CompanyName:   asset.CompanyName,
		Status:        models.AssignmentStatusAssigned,
	}
	db.Create(assignment)
	return assignment
}

func TestReturnAssignedAsset(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 3)
	token := tokenFor(employee)

	t.Run("return restores inventory and flips the linked request", func(t *testing.T) {
		// Approve through the API so the assignment and approved request
		// exist the way production creates them
		request := createPendingRequest(db, employee, asset)
		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), tokenFor(hr), nil)
		resp, _ := app.Test(req)
		assert.Equal(t, 200, resp.StatusCode)

		var before models.Asset
		db.First(&before, asset.ID)
		assert.Equal(t, 2, before.AvailableQuantity)

		var assignment models.Assignment
		db.Where("employee_email = ? AND status = ?", employee.Email, models.AssignmentStatusAssigned).First(&assignment)

		req = jsonRequest("PATCH", fmt.Sprintf("/api/assigned-assets/%d/return", assignment.ID), token, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var returned models.Assignment
		db.First(&returned, assignment.ID)
		assert.Equal(t, models.AssignmentStatusReturned, returned.Status)
		assert.NotNil(t, returned.ReturnDate)

		// Availability is back at its pre-approval value
		var after models.Asset
		db.First(&after, asset.ID)
		assert.Equal(t, 3, after.AvailableQuantity)

		var linked models.Request
		db.First(&linked, request.ID)
		assert.Equal(t, models.RequestStatusReturned, linked.RequestStatus)
	})

	t.Run("returning twice conflicts and does not double-increment", func(t *testing.T) {
		assignment := createAssignedAsset(db, employee, asset)
		db.Model(&models.Asset{}).Where("id = ?", asset.ID).UpdateColumn("available_quantity", 2)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/assigned-assets/%d/return", assignment.ID), token, nil)
		resp, _ := app.Test(req)
		assert.Equal(t, 200, resp.StatusCode)

		var mid models.Asset
		db.First(&mid, asset.ID)
		assert.Equal(t, 3, mid.AvailableQuantity)

		req = jsonRequest("PATCH", fmt.Sprintf("/api/assigned-assets/%d/return", assignment.ID), token, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)

		var after models.Asset
		db.First(&after, asset.ID)
		assert.Equal(t, 3, after.AvailableQuantity)
	})

	t.Run("non-returnable assets cannot be returned", func(t *testing.T) {
		consumable := createTestAsset(db, hr, "Notebook", models.AssetTypeNonReturnable, 5)
		assignment := createAssignedAsset(db, employee, consumable)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/assigned-assets/%d/return", assignment.ID), token, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var unchanged models.Assignment
		db.First(&unchanged, assignment.ID)
		assert.Equal(t, models.AssignmentStatusAssigned, unchanged.Status)
	})

	t.Run("only the owning employee may return", func(t *testing.T) {
		other := createTestEmployee(db, "Emp Two", "other@test.com")
		assignment := createAssignedAsset(db, employee, asset)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/assigned-assets/%d/return", assignment.ID), tokenFor(other), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("missing assignment yields 404", func(t *testing.T) {
		req := jsonRequest("PATCH", "/api/assigned-assets/9999/return", token, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

// An employee holding two approved requests for the same asset: returning
// one assignment flips exactly one request and leaves the sibling
// assignment open
func TestReturnFlipsOnlyOneRequest(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 5)

	for i := 0; i < 2; i++ {
		request := createPendingRequest(db, employee, asset)
		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), tokenFor(hr), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	var assignment models.Assignment
	db.Where("employee_email = ? AND status = ?", employee.Email, models.AssignmentStatusAssigned).
		Order("id ASC").First(&assignment)

	req := jsonRequest("PATCH", fmt.Sprintf("/api/assigned-assets/%d/return", assignment.ID), tokenFor(employee), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var returned, approved int64
	db.Model(&models.Request{}).
		Where("requester_email = ? AND asset_id = ? AND request_status = ?", employee.Email, asset.ID, models.RequestStatusReturned).
		Count(&returned)
	db.Model(&models.Request{}).
		Where("requester_email = ? AND asset_id = ? AND request_status = ?", employee.Email, asset.ID, models.RequestStatusApproved).
		Count(&approved)
	assert.Equal(t, int64(1), returned)
	assert.Equal(t, int64(1), approved)

	var open int64
	db.Model(&models.Assignment{}).
		Where("employee_email = ? AND status = ?", employee.Email, models.AssignmentStatusAssigned).
		Count(&open)
	assert.Equal(t, int64(1), open)
}

func TestListAssignedAssets(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	other := createTestEmployee(db, "Emp Two", "other@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 5)

	createAssignedAsset(db, employee, asset)
	createAssignedAsset(db, employee, asset)
	createAssignedAsset(db, other, asset)

	t.Run("employee sees only own assignments", func(t *testing.T) {
		req := jsonRequest("GET", "/api/assigned-assets/me", tokenFor(employee), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var assignments []models.Assignment
		decodeInto(resp, &assignments)
		assert.Len(t, assignments, 2)
	})

	t.Run("HR sees every assignment under them", func(t *testing.T) {
		req := jsonRequest("GET", "/api/assigned-assets/hr", tokenFor(hr), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var assignments []models.Assignment
		decodeInto(resp, &assignments)
		assert.Len(t, assignments, 3)
	})
}
