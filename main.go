package main

import (
	"log"
	"os"
	"time"

	"assetverse-backend/controllers"
	"assetverse-backend/models"
	"assetverse-backend/routes"
	"assetverse-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func main() {
	// Database initialization
	db, err := models.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto migration
	db.AutoMigrate(&models.User{}, &models.Asset{}, &models.Request{}, &models.Assignment{}, &models.Affiliation{}, &models.Package{}, &models.Payment{}, &models.Contact{})

	// Seed the subscription package catalog
	seedDefaultPackages(db)

	// Fiber application
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"code":    code,
			})
		},
	})

	// Middleware
	app.Use(logger.New())

	// CORS settings
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Domain services
	inventoryService := services.NewInventoryService(db)
	assignmentService := services.NewAssignmentService(db, inventoryService)
	affiliationService := services.NewAffiliationService(db, assignmentService)
	requestService := services.NewRequestService(db, inventoryService, assignmentService, affiliationService)
	checkoutProvider := services.NewLocalCheckoutProvider()

	// Controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	assetController := controllers.NewAssetController(db, inventoryService)
	requestController := controllers.NewRequestController(db, requestService)
	assignmentController := controllers.NewAssignmentController(db, assignmentService)
	affiliationController := controllers.NewAffiliationController(db, affiliationService)
	packageController := controllers.NewPackageController(db)
	paymentController := controllers.NewPaymentController(db, checkoutProvider)
	contactController := controllers.NewContactController(db)
	analyticsController := controllers.NewAnalyticsController(db)

	// Routes
	routes.SetupAuthRoutes(app, authController)
	routes.SetupUserRoutes(app, userController)
	routes.SetupAssetRoutes(app, assetController)
	routes.SetupRequestRoutes(app, requestController)
	routes.SetupAssignmentRoutes(app, assignmentController)
	routes.SetupAffiliationRoutes(app, affiliationController)
	routes.SetupPackageRoutes(app, packageController)
	routes.SetupPaymentRoutes(app, paymentController)
	routes.SetupContactRoutes(app, contactController)
	routes.SetupAnalyticsRoutes(app, analyticsController)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "AssetVerse API is running",
			"timestamp": time.Now().Unix(),
		})
	})

	// Server startup
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

// seedDefaultPackages inserts the subscription package catalog on first boot
func seedDefaultPackages(db *gorm.DB) {
	defaultPackages := []models.Package{
		{Name: "Basic", EmployeeLimit: 5, Price: 5, Features: "Asset Tracking, Employee Management, Basic Support"},
		{Name: "Standard", EmployeeLimit: 10, Price: 8, Features: "All Basic features, Advanced Analytics, Priority Support"},
		{Name: "Premium", EmployeeLimit: 20, Price: 15, Features: "All Standard features, Custom Branding, 24/7 Support"},
	}

	var count int64
	db.Model(&models.Package{}).Count(&count)

	if count == 0 {
		log.Println("Seeding package catalog...")
		for _, pkg := range defaultPackages {
			if err := db.Create(&pkg).Error; err != nil {
				log.Printf("Failed to create package '%s': %v", pkg.Name, err)
			} else {
				log.Printf("Created package: %s", pkg.Name)
			}
		}
		log.Println("Package catalog seeded")
	} else {
		log.Printf("Package catalog already exists (%d packages)", count)
	}
}
