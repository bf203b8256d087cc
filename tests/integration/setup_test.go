package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"weddinghub/internal/handlers"
	"weddinghub/internal/logger"
	"weddinghub/internal/middleware"
	"weddinghub/internal/models"
	"weddinghub/internal/notify"
	"weddinghub/internal/services"
	"weddinghub/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Wedding{},
		&models.BudgetCategory{},
		&models.VendorBooking{},
		&models.Task{},
		&models.Vendor{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	notifier := notify.Noop{}
	weddingService := services.NewWeddingService(db, notifier)
	categoryService := services.NewCategoryService(db, notifier)
	bookingService := services.NewBookingService(db, notifier)
	taskService := services.NewTaskService(db, notifier)
	vendorService := services.NewVendorService(db)
	dashboardService := services.NewDashboardService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	weddingHandler := handlers.NewWeddingHandler(weddingService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	taskHandler := handlers.NewTaskHandler(taskService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	weddings := v1.Group("/weddings")
	weddings.POST("", weddingHandler.CreateWedding)
	weddings.GET("/:id", weddingHandler.GetWedding)
	weddings.PUT("/:id", weddingHandler.UpdateWedding)
	weddings.PUT("/:id/budget", weddingHandler.UpdateBudget)
	weddings.GET("/:id/dashboard", dashboardHandler.GetSummary)
	weddings.POST("/:id/categories", categoryHandler.CreateCategory)
	weddings.GET("/:id/categories", categoryHandler.GetWeddingCategories)
	weddings.POST("/:id/bookings", bookingHandler.CreateBooking)
	weddings.GET("/:id/bookings", bookingHandler.GetWeddingBookings)
	weddings.POST("/:id/tasks", taskHandler.CreateTask)
	weddings.GET("/:id/tasks", taskHandler.GetWeddingTasks)

	categories := v1.Group("/categories")
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	bookings := v1.Group("/bookings")
	bookings.GET("/:id", bookingHandler.GetBooking)
	bookings.PUT("/:id", bookingHandler.UpdateBooking)
	bookings.DELETE("/:id", bookingHandler.DeleteBooking)

	tasks := v1.Group("/tasks")
	tasks.POST("/:id/toggle", taskHandler.ToggleTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	vendors := v1.Group("/vendors")
	vendors.POST("", vendorHandler.CreateVendor)
	vendors.GET("", vendorHandler.SearchVendors)
	vendors.GET("/:id", vendorHandler.GetVendor)

	admin := v1.Group("/admin")
	admin.POST("/login", authHandler.AdminLogin)

	adminProtected := admin.Group("/")
	adminProtected.Use(middleware.AdminAuth())
	adminProtected.PUT("/categories/:id/actual", categoryHandler.OverrideActual)
	adminProtected.POST("/weddings/:id/verify", categoryHandler.VerifyLedger)
	adminProtected.PUT("/vendors/:id/verify", vendorHandler.SetVerified)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createWedding creates a wedding through the API and returns its ID.
func (app *testApp) createWedding(t *testing.T) float64 {
	t.Helper()
	body := `{"partner1_name":"Dana","partner2_name":"Omer","wedding_date":"2027-06-15","guest_count":250,"total_budget":12000000}`
	rec := app.request("POST", "/api/v1/weddings", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create wedding failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	wedding := result["wedding"].(map[string]interface{})
	return wedding["id"].(float64)
}

// createCategory creates a budget category through the API and returns its ID.
func (app *testApp) createCategory(t *testing.T, weddingID float64, name string, planned int64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"icon":"🎀","planned_amount":%d}`, name, planned)
	rec := app.request("POST", fmt.Sprintf("/api/v1/weddings/%.0f/categories", weddingID), body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	category := result["category"].(map[string]interface{})
	return category["id"].(float64)
}

// adminToken logs in with the default development admin secret.
func (app *testApp) adminToken(t *testing.T) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/admin/login", `{"secret":"dev-only-admin-secret"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}
