package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"balanza/internal/config"
	"balanza/internal/database"
	"balanza/internal/events"
	"balanza/internal/handlers"
	"balanza/internal/logger"
	"balanza/internal/middleware"
	"balanza/internal/services"
	"balanza/internal/validator"

	_ "balanza/internal/docs" // Import swagger docs
)

// @title           Balanza API
// @version         1.0
// @description     Balanza is a small-business ledger: funds, credit cards, and an append-only transaction log projected into live balances.
// @termsOfService  http://swagger.io/terms/

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	hub := events.NewHub()
	userService := services.NewUserService(db)
	businessService := services.NewBusinessService(db)
	ledgerService := services.NewLedgerService(db)
	fundService := services.NewFundService(db, ledgerService)
	cardService := services.NewCardService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, fundService, cardService, ledgerService, hub)
	dashboardService := services.NewDashboardService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	businessHandler := handlers.NewBusinessHandler(businessService, auditService)
	fundHandler := handlers.NewFundHandler(fundService, auditService)
	cardHandler := handlers.NewCardHandler(cardService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	balanceHandler := handlers.NewBalanceHandler(ledgerService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	wsHandler := handlers.NewWSHandler(hub, businessService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Business-Id")

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

	// Realtime event stream (token auth via query parameter)
	router.GET("/ws/finance/:businessID", wsHandler.Stream)

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Business routes
	businesses := protected.Group("/businesses")
	businesses.POST("", businessHandler.CreateBusiness)
	businesses.GET("", businessHandler.GetUserBusinesses)
	businesses.POST("/:id/members", businessHandler.AddMember)

	// Business-scoped routes (require X-Business-Id header and membership)
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

	log.Infof("Starting Balanza backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
