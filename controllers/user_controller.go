package controllers

import (
	"time"

	"assetverse-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles profile endpoints
type UserController struct {
	DB *gorm.DB
}

// NewUserController creates a new UserController
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// UpdateProfileRequest is the body for profile edits
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
	DateOfBirth  string `json:"date_of_birth"`
}

// GetMe handles GET /api/users/me
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(404).JSON(Response{
			Success: false,
			Message: "User not found",
		})
	}

	return c.JSON(user)
}

// UpdateProfile handles PATCH /api/users/me
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(404).JSON(Response{
			Success: false,
			Message: "User not found",
		})
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ProfileImage != "" {
		updates["profile_image"] = req.ProfileImage
	}
	if req.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", req.DateOfBirth); err == nil {
			updates["date_of_birth"] = dob
		}
	}

	if len(updates) == 0 {
		return c.Status(400).JSON(Response{
			Success: false,
			Message: "No valid fields provided for update",
		})
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(Response{
			Success: false,
			Message: "Failed to update profile",
		})
	}

	var updated models.User
	uc.DB.First(&updated, user.ID)

	return c.JSON(Response{
		Success: true,
		Message: "Profile updated",
		Data:    updated,
	})
}
