package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"assetverse-backend/controllers"
	"assetverse-backend/models"
	"assetverse-backend/routes"
	"assetverse-backend/services"
	"assetverse-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory test database with all tables migrated
func setupTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.Asset{}, &models.Request{}, &models.Assignment{}, &models.Affiliation{}, &models.Package{}, &models.Payment{}, &models.Contact{})
	return db
}

// setupTestApp builds a fiber app with the full service and route wiring
// over the given database
func setupTestApp(db *gorm.DB) (*fiber.App, *services.LocalCheckoutProvider) {
	inventoryService := services.NewInventoryService(db)
	assignmentService := services.NewAssignmentService(db, inventoryService)
	affiliationService := services.NewAffiliationService(db, assignmentService)
	requestService := services.NewRequestService(db, inventoryService, assignmentService, affiliationService)
	checkoutProvider := services.NewLocalCheckoutProvider()

	app := fiber.New()

	routes.SetupAuthRoutes(app, controllers.NewAuthController(db))
	routes.SetupUserRoutes(app, controllers.NewUserController(db))
	routes.SetupAssetRoutes(app, controllers.NewAssetController(db, inventoryService))
	routes.SetupRequestRoutes(app, controllers.NewRequestController(db, requestService))
	routes.SetupAssignmentRoutes(app, controllers.NewAssignmentController(db, assignmentService))
	routes.SetupAffiliationRoutes(app, controllers.NewAffiliationController(db, affiliationService))
	routes.SetupPackageRoutes(app, controllers.NewPackageController(db))
	routes.SetupPaymentRoutes(app, controllers.NewPaymentController(db, checkoutProvider))
	routes.SetupContactRoutes(app, controllers.NewContactController(db))
	routes.SetupAnalyticsRoutes(app, controllers.NewAnalyticsController(db))

	return app, checkoutProvider
}

// createTestHR creates an HR user with the given package limit
func createTestHR(db *gorm.DB, name, email string, packageLimit int) *models.User {
	hash, _ := utils.HashPassword("password123")
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleHR,
		CompanyName:  "Acme Corp",
		CompanyLogo:  "https://example.com/logo.png",
		PackageLimit: packageLimit,
		Subscription: models.SubscriptionBasic,
	}
	db.Create(user)
	return user
}

// createTestEmployee creates an employee user
func createTestEmployee(db *gorm.DB, name, email string) *models.User {
	hash, _ := utils.HashPassword("password123")
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleEmployee,
	}
	db.Create(user)
	return user
}

// createTestAsset creates an asset owned by the HR
func createTestAsset(db *gorm.DB, hr *models.User, name, assetType string, quantity int) *models.Asset {
	asset := &models.Asset{
		ProductName:       name,
		ProductImage:      "https://example.com/asset.png",
		ProductType:       assetType,
		ProductQuantity:   quantity,
		AvailableQuantity: quantity,
		HrEmail:           hr.Email,
		CompanyName:       hr.CompanyName,
	}
	db.Create(asset)
	return asset
}

// tokenFor issues a JWT for the user
func tokenFor(user *models.User) string {
	token, _ := utils.GenerateJWT(user.ID, user.Email, user.Role)
	return token
}

// jsonRequest builds an authenticated JSON request
func jsonRequest(method, target, token string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// decodeBody decodes a JSON response body into a map
func decodeBody(resp *http.Response) map[string]any {
	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	return body
}

// decodeInto decodes a JSON response body into dst
func decodeInto(resp *http.Response, dst any) {
	json.NewDecoder(resp.Body).Decode(dst)
}
