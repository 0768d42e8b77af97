package main

import (
	"log"
	_ "tradesense/docs" // Import generated docs
	"tradesense/internal/config"
	"tradesense/internal/dao/challenge"
	"tradesense/internal/database"
	"tradesense/internal/handlers"
	"tradesense/internal/handlers/websocket"
	"tradesense/internal/services"
	"tradesense/internal/services/market"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title TradeSense API
// @version 1.0
// @description Challenge account trading API with rule evaluation and market data
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@tradesense.ai
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	if err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run database migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Seed default plans and demo user
	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware for development
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	db := database.GetDB()

	// Initialize DAOs
	challengeDAO := challenge.NewChallengeDAO(db)
	tradeDAO := challenge.NewTradeDAO(db)
	dailyMetricDAO := challenge.NewDailyMetricDAO(db)
	planDAO := challenge.NewPlanDAO(db)

	// Initialize WebSocket handler first so services can push through its hub
	wsHandler := websocket.NewWebSocketHandler()

	// Initialize services
	quoteService := market.NewQuoteService()
	challengeService := services.NewChallengeService(challengeDAO, tradeDAO, dailyMetricDAO, planDAO)
	tradeService := services.NewTradeService(challengeDAO, tradeDAO, dailyMetricDAO, quoteService, wsHandler.GetHub(), db)
	leaderboardService := services.NewLeaderboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	tradeHandler := handlers.NewTradeHandler(tradeService, challengeService)
	checkoutHandler := handlers.NewCheckoutHandler(challengeService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	marketHandler := handlers.NewMarketHandler(quoteService)

	// Health check endpoint
	r.GET("/health", healthHandler.Health)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket endpoint
	r.GET("/ws", wsHandler.HandleWebSocket)

	// API routes group
	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandler.Health)

		// Challenge endpoints
		challenges := api.Group("/challenges")
		{
			challenges.GET("/active", challengeHandler.GetActiveChallenge)
			challenges.GET("/:id", challengeHandler.GetChallengeDetail)
		}

		// Trade endpoints
		api.POST("/trades", tradeHandler.ExecuteTrade)
		api.GET("/trades", tradeHandler.GetTrades)

		// Checkout endpoints
		api.POST("/checkout/mock", checkoutHandler.MockCheckout)
		api.GET("/plans", checkoutHandler.GetPlans)

		// Leaderboard endpoints
		api.GET("/leaderboard/monthly-top10", leaderboardHandler.GetMonthlyTop10)

		// Market data endpoints
		marketGroup := api.Group("/market")
		{
			marketGroup.GET("/quote/:symbol", marketHandler.GetQuote)
			marketGroup.GET("/symbols", marketHandler.GetSupportedSymbols)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
