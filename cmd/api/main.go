package main

import (
	"fmt"
	"net/http"
	"os"

	"weddinghub/internal/config"
	"weddinghub/internal/database"
	"weddinghub/internal/handlers"
	"weddinghub/internal/logger"
	"weddinghub/internal/middleware"
	"weddinghub/internal/notify"
	"weddinghub/internal/services"
	"weddinghub/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "weddinghub/internal/docs" // Import swagger docs
)

// @title           WeddingHub API
// @version         2.0
// @description     WeddingHub is a wedding planning backend: budget categories with live running totals, vendor bookings, a task checklist, a vendor directory, and a dashboard.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Update fan-out is optional; without a broker every mutation still
	// succeeds, listeners just hear nothing.
	var notifier notify.Notifier = notify.Noop{}
	if appConfig.AMQPUrl != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(appConfig.AMQPUrl, appConfig.AMQPExchange)
		if err != nil {
			log.Warnf("Update fan-out disabled, broker unreachable: %v", err)
		} else {
			notifier = amqpNotifier
			defer amqpNotifier.Close()
		}
	}

	// Initialize services
	db := dbManager.DB()
	weddingService := services.NewWeddingService(db, notifier)
	categoryService := services.NewCategoryService(db, notifier)
	bookingService := services.NewBookingService(db, notifier)
	taskService := services.NewTaskService(db, notifier)
	vendorService := services.NewVendorService(db)
	dashboardService := services.NewDashboardService(db)

	// Seed the demo wedding and vendor directory on first boot in
	// development setups
	if appConfig.SeedDemoData {
		if _, err := weddingService.SeedDemoWedding(); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		if err := vendorService.SeedDemoVendors(); err != nil {
			return fmt.Errorf("failed to seed vendor directory: %w", err)
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	weddingHandler := handlers.NewWeddingHandler(weddingService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	taskHandler := handlers.NewTaskHandler(taskService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// The limiter is shared state; construct it once and hand the same
	// instance to the middleware.
	limiter := middleware.NewRateLimiter(appConfig.RateLimitPerMinute)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RateLimit(limiter))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Wedding routes
	weddings := v1.Group("/weddings")
	weddings.POST("", weddingHandler.CreateWedding)
	weddings.GET("/:id", weddingHandler.GetWedding)
	weddings.PUT("/:id", weddingHandler.UpdateWedding)
	weddings.PUT("/:id/budget", weddingHandler.UpdateBudget)
	weddings.GET("/:id/dashboard", dashboardHandler.GetSummary)

	// Nested collections scoped to a wedding
	weddings.POST("/:id/categories", categoryHandler.CreateCategory)
	weddings.GET("/:id/categories", categoryHandler.GetWeddingCategories)
	weddings.POST("/:id/bookings", bookingHandler.CreateBooking)
	weddings.GET("/:id/bookings", bookingHandler.GetWeddingBookings)
	weddings.POST("/:id/tasks", taskHandler.CreateTask)
	weddings.GET("/:id/tasks", taskHandler.GetWeddingTasks)

	// Category routes
	categories := v1.Group("/categories")
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Booking routes
	bookings := v1.Group("/bookings")
	bookings.GET("/:id", bookingHandler.GetBooking)
	bookings.PUT("/:id", bookingHandler.UpdateBooking)
	bookings.DELETE("/:id", bookingHandler.DeleteBooking)

	// Task routes
	tasks := v1.Group("/tasks")
	tasks.POST("/:id/toggle", taskHandler.ToggleTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// Vendor directory routes
	vendors := v1.Group("/vendors")
	vendors.POST("", vendorHandler.CreateVendor)
	vendors.GET("", vendorHandler.SearchVendors)
	vendors.GET("/:id", vendorHandler.GetVendor)

	// Admin routes
	admin := v1.Group("/admin")
	admin.POST("/login", authHandler.AdminLogin)

	adminProtected := admin.Group("/")
	adminProtected.Use(middleware.AdminAuth())
	adminProtected.PUT("/categories/:id/actual", categoryHandler.OverrideActual)
	adminProtected.POST("/weddings/:id/verify", categoryHandler.VerifyLedger)
	adminProtected.PUT("/vendors/:id/verify", vendorHandler.SetVerified)

	log.Infof("Starting WeddingHub backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
