package main

import (
	"fmt"
	"testing"

	"assetverse-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createPendingRequest(db *gorm.DB, employee *models.User, asset *models.Asset) *models.Request {
	request := &models.Request{
		AssetID:        asset.ID,
		AssetName:      asset.ProductName,
		AssetType:      asset.ProductType,
		RequesterName:  employee.Name,
		RequesterEmail: employee.Email,
		HrEmail:        asset.HrEmail,
		CompanyName:    asset.CompanyName,
		RequestStatus:  models.RequestStatusPending,
	}
	db.Create(request)
	return request
}

func TestCreateRequest(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 2)
	token := tokenFor(employee)

	t.Run("creates a pending request with snapshot fields", func(t *testing.T) {
		req := jsonRequest("POST", "/api/requests/", token, map[string]any{
			"asset_id": asset.ID,
			"note":     "need it for onboarding",
		})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var request models.Request
		err = db.Where("requester_email = ?", employee.Email).First(&request).Error
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusPending, request.RequestStatus)
		assert.Equal(t, "Laptop", request.AssetName)
		assert.Equal(t, models.AssetTypeReturnable, request.AssetType)
		assert.Equal(t, hr.Email, request.HrEmail)
		assert.Equal(t, "need it for onboarding", request.Note)
		assert.Empty(t, request.ProcessedBy)

		// Creation alone reserves nothing
		var fresh models.Asset
		db.First(&fresh, asset.ID)
		assert.Equal(t, 2, fresh.AvailableQuantity)
	})

	t.Run("missing asset yields 404", func(t *testing.T) {
		req := jsonRequest("POST", "/api/requests/", token, map[string]any{
			"asset_id": 9999,
		})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("out of stock asset yields 400", func(t *testing.T) {
		empty := createTestAsset(db, hr, "Monitor", models.AssetTypeReturnable, 0)

		req := jsonRequest("POST", "/api/requests/", token, map[string]any{
			"asset_id": empty.ID,
		})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("HR callers are rejected", func(t *testing.T) {
		req := jsonRequest("POST", "/api/requests/", tokenFor(hr), map[string]any{
			"asset_id": asset.ID,
		})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})
}

func TestApproveRequest(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 2)
	hrToken := tokenFor(hr)

	t.Run("approval reserves inventory, affiliates and assigns", func(t *testing.T) {
		request := createPendingRequest(db, employee, asset)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var updated models.Request
		db.First(&updated, request.ID)
		assert.Equal(t, models.RequestStatusApproved, updated.RequestStatus)
		assert.NotNil(t, updated.ApprovalDate)
		assert.Equal(t, hr.Email, updated.ProcessedBy)

		var fresh models.Asset
		db.First(&fresh, asset.ID)
		assert.Equal(t, 1, fresh.AvailableQuantity)

		var assignment models.Assignment
		err = db.Where("employee_email = ? AND asset_id = ?", employee.Email, asset.ID).First(&assignment).Error
		assert.NoError(t, err)
		assert.Equal(t, models.AssignmentStatusAssigned, assignment.Status)
		assert.Equal(t, asset.ProductName, assignment.AssetName)

		var affiliation models.Affiliation
		err = db.Where("employee_email = ? AND hr_email = ?", employee.Email, hr.Email).First(&affiliation).Error
		assert.NoError(t, err)
		assert.Equal(t, models.AffiliationStatusActive, affiliation.Status)

		var hrUser models.User
		db.First(&hrUser, hr.ID)
		assert.Equal(t, 1, hrUser.CurrentEmployees)
	})

	t.Run("approving a non-pending request conflicts", func(t *testing.T) {
		request := createPendingRequest(db, employee, asset)
		db.Model(request).UpdateColumn("request_status", models.RequestStatusRejected)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("only the owning HR may approve", func(t *testing.T) {
		otherHR := createTestHR(db, "HR Two", "hr2@other.com", 5)
		request := createPendingRequest(db, employee, asset)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), tokenFor(otherHR), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)

		var unchanged models.Request
		db.First(&unchanged, request.ID)
		assert.Equal(t, models.RequestStatusPending, unchanged.RequestStatus)
	})

	t.Run("missing request yields 404", func(t *testing.T) {
		req := jsonRequest("PATCH", "/api/requests/9999/approve", hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestRejectRequest(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 2)
	hrToken := tokenFor(hr)

	t.Run("rejection flips status without touching inventory", func(t *testing.T) {
		request := createPendingRequest(db, employee, asset)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/reject", request.ID), hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var updated models.Request
		db.First(&updated, request.ID)
		assert.Equal(t, models.RequestStatusRejected, updated.RequestStatus)
		assert.Nil(t, updated.ApprovalDate)
		assert.Equal(t, hr.Email, updated.ProcessedBy)

		var fresh models.Asset
		db.First(&fresh, asset.ID)
		assert.Equal(t, 2, fresh.AvailableQuantity)
	})

	t.Run("rejecting twice conflicts", func(t *testing.T) {
		request := createPendingRequest(db, employee, asset)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/reject", request.ID), hrToken, nil)
		resp, _ := app.Test(req)
		assert.Equal(t, 200, resp.StatusCode)

		req = jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/reject", request.ID), hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("rejected requests can never be approved", func(t *testing.T) {
		request := createPendingRequest(db, employee, asset)
		db.Model(request).UpdateColumn("request_status", models.RequestStatusRejected)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})
}

func TestListRequests(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 5)
	employee := createTestEmployee(db, "Emp One", "emp@test.com")
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 5)

	first := createPendingRequest(db, employee, asset)
	second := createPendingRequest(db, employee, asset)
	db.Model(second).UpdateColumn("request_status", models.RequestStatusRejected)
	_ = first

	t.Run("HR sees all their requests", func(t *testing.T) {
		req := jsonRequest("GET", "/api/requests/hr", tokenFor(hr), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var requests []models.Request
		decodeInto(resp, &requests)
		assert.Len(t, requests, 2)
	})

	t.Run("status filter narrows the listing", func(t *testing.T) {
		req := jsonRequest("GET", "/api/requests/hr?status=Rejected", tokenFor(hr), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var requests []models.Request
		decodeInto(resp, &requests)
		assert.Len(t, requests, 1)
		assert.Equal(t, models.RequestStatusRejected, requests[0].RequestStatus)
	})

	t.Run("employee sees own requests", func(t *testing.T) {
		req := jsonRequest("GET", "/api/requests/me", tokenFor(employee), nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var requests []models.Request
		decodeInto(resp, &requests)
		assert.Len(t, requests, 2)
	})
}

// Scenario: asset with quantity 3, three approvals drain it, a fourth
// request cannot even be created
func TestInventoryConservation(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 10)
	asset := createTestAsset(db, hr, "Keyboard", models.AssetTypeReturnable, 3)
	hrToken := tokenFor(hr)

	for i := 1; i <= 3; i++ {
		employee := createTestEmployee(db, fmt.Sprintf("Emp %d", i), fmt.Sprintf("emp%d@test.com", i))
		request := createPendingRequest(db, employee, asset)

		req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", request.ID), hrToken, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var fresh models.Asset
		db.First(&fresh, asset.ID)
		assert.Equal(t, 3-i, fresh.AvailableQuantity)
		assert.GreaterOrEqual(t, fresh.AvailableQuantity, 0)
		assert.LessOrEqual(t, fresh.AvailableQuantity, fresh.ProductQuantity)
	}

	// Fourth employee cannot request the drained asset
	fourth := createTestEmployee(db, "Emp 4", "emp4@test.com")
	req := jsonRequest("POST", "/api/requests/", tokenFor(fourth), map[string]any{
		"asset_id": asset.ID,
	})
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	// Approval of a stale pending request also fails on stock
	stale := createPendingRequest(db, fourth, asset)
	req = jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", stale.ID), hrToken, nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var fresh models.Asset
	db.First(&fresh, asset.ID)
	assert.Equal(t, 0, fresh.AvailableQuantity)
}

// Scenario: package limit 1, second distinct employee's approval is
// rejected and leaves no partial reservation behind
func TestPackageLimitEnforcement(t *testing.T) {
	db := setupTestDB()
	app, _ := setupTestApp(db)

	hr := createTestHR(db, "HR One", "hr@acme.com", 1)
	asset := createTestAsset(db, hr, "Laptop", models.AssetTypeReturnable, 5)
	hrToken := tokenFor(hr)

	empA := createTestEmployee(db, "Emp A", "a@test.com")
	empB := createTestEmployee(db, "Emp B", "b@test.com")

	requestA := createPendingRequest(db, empA, asset)
	req := jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", requestA.ID), hrToken, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var hrUser models.User
	db.First(&hrUser, hr.ID)
	assert.Equal(t, 1, hrUser.CurrentEmployees)

	var beforeB models.Asset
	db.First(&beforeB, asset.ID)

	requestB := createPendingRequest(db, empB, asset)
	req = jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", requestB.ID), hrToken, nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	// The reservation made before the limit check was rolled back
	var afterB models.Asset
	db.First(&afterB, asset.ID)
	assert.Equal(t, beforeB.AvailableQuantity, afterB.AvailableQuantity)

	// Request B is still pending, no assignment was created
	var unchanged models.Request
	db.First(&unchanged, requestB.ID)
	assert.Equal(t, models.RequestStatusPending, unchanged.RequestStatus)

	var count int64
	db.Model(&models.Assignment{}).Where("employee_email = ?", empB.Email).Count(&count)
	assert.Equal(t, int64(0), count)

	db.First(&hrUser, hr.ID)
	assert.Equal(t, 1, hrUser.CurrentEmployees)

	// A's second request sails through: the affiliation already exists
	requestA2 := createPendingRequest(db, empA, asset)
	req = jsonRequest("PATCH", fmt.Sprintf("/api/requests/%d/approve", requestA2.ID), hrToken, nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var affiliations int64
	db.Model(&models.Affiliation{}).Where("employee_email = ? AND status = ?", empA.Email, models.AffiliationStatusActive).Count(&affiliations)
	assert.Equal(t, int64(1), affiliations)
}
