package controllers

import (
	"strconv"
	"strings"
	"time"

	"assetverse-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactController handles contact form submissions
type ContactController struct {
	DB *gorm.DB
}

// NewContactController creates a new ContactController
func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// ContactRequest is the body for a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateContactStatusRequest is the body for status updates
type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

// SubmitContactForm handles POST /api/contact (public)
func (cc *ContactController) SubmitContactForm(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "All fields are required: name, email, subject, message",
		})
	}

	if !emailRegex.MatchString(req.Email) {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid email format",
		})
	}

	if len(req.Message) < 10 {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Message must be at least 10 characters long",
		})
	}

	if len(req.Message) > 2000 {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Message must be less than 2000 characters",
		})
	}

	contact := models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  models.ContactStatusUnread,
	}

	if err := cc.DB.Create(&contact).Error; err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to save message",
		})
	}

	return c.Status(201).JSON(Response{
		Success: true,
		Message: "Your message has been sent successfully. We will get back to you soon!",
		Data:    fiber.Map{"contact_id": contact.ID},
	})
}

// GetContactSubmissions handles GET /api/contact (HR only)
func (cc *ContactController) GetContactSubmissions(c *fiber.Ctx) error {
	status := c.Query("status", "all")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := cc.DB.Model(&models.Contact{})
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list contacts",
		})
	}

	var contacts []models.Contact
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&contacts).Error
	if err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to list contacts",
		})
	}

	return c.JSON(fiber.Map{
		"data":        contacts,
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": (total + int64(limit) - 1) / int64(limit),
	})
}

// UpdateContactStatus handles PATCH /api/contact/:id/status (HR only)
func (cc *ContactController) UpdateContactStatus(c *fiber.Ctx) error {
	contactID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid contact id",
		})
	}

	var req UpdateContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.Status != models.ContactStatusUnread &&
		req.Status != models.ContactStatusRead &&
		req.Status != models.ContactStatusReplied {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Status must be: unread, read, or replied",
		})
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.ContactStatusReplied {
		updates["replied_at"] = time.Now()
	}

	result := cc.DB.Model(&models.Contact{}).Where("id = ?", contactID).Updates(updates)
	if result.Error != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to update contact",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(Response{
			Success: false,
			Message: "Contact not found",
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "Contact status updated",
	})
}
