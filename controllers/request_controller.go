package controllers

import (
	"strconv"

	"assetverse-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestController handles the asset request lifecycle endpoints
type RequestController struct {
	DB       *gorm.DB
	Requests *services.RequestService
}

// NewRequestController creates a new RequestController
func NewRequestController(db *gorm.DB, requests *services.RequestService) *RequestController {
	return &RequestController{DB: db, Requests: requests}
}

// CreateRequestBody is the body for a new asset request
type CreateRequestBody struct {
	AssetID uint   `json:"asset_id"`
	Note    string `json:"note"`
}

// CreateRequest handles POST /api/requests (employee only)
func (rc *RequestController) CreateRequest(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	var body CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if body.AssetID == 0 {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "asset_id is required",
		})
	}

	requesterName := rc.lookupName(email)

	request, err := rc.Requests.Create(email, requesterName, body.AssetID, body.Note)
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.Status(201).JSON(Response{
		Success: true,
		Message: "Request created",
		Data:    request,
	})
}

// GetHRRequests handles GET /api/requests/hr?status=
func (rc *RequestController) GetHRRequests(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)
	status := c.Query("status", "All")

	requests, err := rc.Requests.ListForHR(hrEmail, status)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list requests",
		})
	}

	return c.JSON(requests)
}

// GetMyRequests handles GET /api/requests/me
func (rc *RequestController) GetMyRequests(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	requests, err := rc.Requests.ListForEmployee(email)
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list requests",
		})
	}

	return c.JSON(requests)
}

// ApproveRequest handles PATCH /api/requests/:id/approve (HR only)
func (rc *RequestController) ApproveRequest(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request id",
		})
	}

	result, err := rc.Requests.Approve(hrEmail, uint(requestID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Request approved",
		Data:    result,
	})
}

// RejectRequest handles PATCH /api/requests/:id/reject (HR only)
func (rc *RequestController) RejectRequest(c *fiber.Ctx) error {
	hrEmail, _ := c.Locals("user_email").(string)

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request id",
		})
	}

	request, err := rc.Requests.Reject(hrEmail, uint(requestID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(Response{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Request rejected",
		Data:    request,
	})
}

// lookupName fetches the caller's display name for denormalized snapshots
func (rc *RequestController) lookupName(email string) string {
	type row struct{ Name string }
	var r row
	rc.DB.Table("users").Select("name").Where("email = ?", email).Scan(&r)
	return r.Name
}
