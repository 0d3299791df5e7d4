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

	"balanza/internal/events"
	"balanza/internal/handlers"
	"balanza/internal/logger"
	"balanza/internal/middleware"
	"balanza/internal/models"
	"balanza/internal/services"
	"balanza/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Hub    *events.Hub
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

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	allModels := []interface{}{
		&models.User{},
		&models.Business{},
		&models.BusinessMember{},
		&models.Fund{},
		&models.Card{},
		&models.Category{},
		&models.Transaction{},
		&models.TransactionLeg{},
		&models.Balance{},
		&models.AuditLog{},
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
	hub := events.NewHub()

	// Services
	userService := services.NewUserService(db)
	businessService := services.NewBusinessService(db)
	ledgerService := services.NewLedgerService(db)
	fundService := services.NewFundService(db, ledgerService)
	cardService := services.NewCardService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, fundService, cardService, ledgerService, hub)
	dashboardService := services.NewDashboardService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	businessHandler := handlers.NewBusinessHandler(businessService, auditService)
	fundHandler := handlers.NewFundHandler(fundService, auditService)
	cardHandler := handlers.NewCardHandler(cardService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	balanceHandler := handlers.NewBalanceHandler(ledgerService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	businesses := protected.Group("/businesses")
	businesses.POST("", businessHandler.CreateBusiness)
	businesses.GET("", businessHandler.GetUserBusinesses)
	businesses.POST("/:id/members", businessHandler.AddMember)

	scoped := protected.Group("/")
	scoped.Use(middleware.BusinessMiddleware(businessService))

	funds := scoped.Group("/funds")
	funds.POST("", fundHandler.CreateFund)
	funds.GET("", fundHandler.GetBusinessFunds)
	funds.GET("/:id", fundHandler.GetFund)
	funds.PUT("/:id", fundHandler.UpdateFund)

	cards := scoped.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetBusinessCards)
	cards.GET("/:id", cardHandler.GetCard)
	cards.PUT("/:id", cardHandler.UpdateCard)

	categories := scoped.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetBusinessCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	transactions := scoped.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetBusinessTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	balances := scoped.Group("/balances")
	balances.GET("", balanceHandler.GetBalances)
	balances.POST("/recompute", balanceHandler.Recompute)

	scoped.GET("/dashboard", dashboardHandler.GetStats)

	return &testApp{DB: db, Hub: hub, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	return app.scopedRequest(method, path, body, token, "")
}

// scopedRequest makes a request carrying the X-Business-Id header.
func (app *testApp) scopedRequest(method, path, body, token, businessID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if businessID != "" {
		req.Header.Set("X-Business-Id", businessID)
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

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"full_name":"Test User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createBusiness creates a business owned by the token's user and returns its ID.
func (app *testApp) createBusiness(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/businesses", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create business failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	business := result["business"].(map[string]interface{})
	return business["id"].(string)
}

// createFund creates a cash fund in the business and returns its ID.
func (app *testApp) createFund(t *testing.T, token, businessID, name string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"fund_type":"CASH"}`, name)
	rec := app.scopedRequest("POST", "/api/v1/funds", body, token, businessID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create fund failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	fund := result["fund"].(map[string]interface{})
	return fund["id"].(string)
}

// createCard creates a card in the business and returns its ID.
func (app *testApp) createCard(t *testing.T, token, businessID, name string, creditLimit int64) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"credit_limit":%d,"closing_day":15,"due_day":30}`, name, creditLimit)
	rec := app.scopedRequest("POST", "/api/v1/cards", body, token, businessID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create card failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	card := result["card"].(map[string]interface{})
	return card["id"].(string)
}
