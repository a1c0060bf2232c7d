package controllers

import (
	"regexp"
	"strings"
	"time"

	"assetverse-backend/models"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles registration and login
type AuthController struct {
	DB *gorm.DB
}

// NewAuthController creates a new AuthController
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// RegisterRequest is the body for registration. HR accounts additionally
// carry company fields.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"date_of_birth"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo"`
}

// LoginRequest is the body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the envelope for auth endpoints
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "name, email, password and role are required",
		})
	}

	if !emailRegex.MatchString(req.Email) {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email format",
		})
	}

	if len(req.Password) < 6 {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Password must be at least 6 characters",
		})
	}

	if req.Role != models.RoleEmployee && req.Role != models.RoleHR {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "role must be employee or hr",
		})
	}

	email := strings.ToLower(req.Email)

	var existing models.User
	if err := ac.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return c.Status(409).JSON(AuthResponse{
			Success: false,
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to create user",
		})
	}

	var dateOfBirth time.Time
	if req.DateOfBirth != "" {
		dateOfBirth, _ = time.Parse("2006-01-02", req.DateOfBirth)
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		DateOfBirth:  dateOfBirth,
	}

	// New HR accounts start on the basic package
	if req.Role == models.RoleHR {
		user.CompanyName = req.CompanyName
		user.CompanyLogo = req.CompanyLogo
		user.PackageLimit = 5
		user.CurrentEmployees = 0
		user.Subscription = models.SubscriptionBasic
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to create user",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to issue token",
		})
	}

	return c.Status(201).JSON(AuthResponse{
		Success: true,
		Message: "User created",
		Token:   token,
		User:    &user,
	})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "email and password are required",
		})
	}

	var user models.User
	err := ac.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
	if err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to issue token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Message: "Logged in",
		Token:   token,
		User:    &user,
	})
}
