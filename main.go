package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/controllers"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting TechGuard Pro API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the datastore (in-memory by default)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Migrate and seed
	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := config.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Database migration and seed completed successfully")

	// Initialize the advice assistant backend
	services.InitAdviceService(cfg.GeminiAPIKey, cfg.GeminiModel)

	router := setupRouter()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all API routes registered.
func setupRouter() *gin.Engine {
	cfg := config.GetConfig()
	router := gin.Default()

	// CORS for the dashboard frontend
	corsConfig := cors.DefaultConfig()
	if cfg == nil || cfg.AllowedOrigins == "" || cfg.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Mock login; everything else runs behind a session
		v1.POST("/auth/login", controllers.Login)

		authed := v1.Group("")
		authed.Use(middleware.RequireSession(cfg))
		{
			authed.GET("/auth/me", controllers.Me)

			// Service orders
			authed.POST("/orders", controllers.CreateOrder)
			authed.GET("/orders", controllers.ListOrders)
			authed.GET("/orders/alerts", controllers.GetOrderAlerts)
			authed.GET("/orders/:id", controllers.GetOrder)
			authed.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
			authed.DELETE("/orders/:id", controllers.DeleteOrder)
			authed.GET("/orders/:id/print", controllers.PrintOrder)

			// Quotes
			authed.POST("/quotes", controllers.CreateQuote)
			authed.GET("/quotes", controllers.ListQuotes)
			authed.PATCH("/quotes/:id/status", controllers.UpdateQuoteStatus)
			authed.DELETE("/quotes/:id", controllers.DeleteQuote)

			// PDV
			authed.GET("/products", controllers.ListProducts)
			authed.GET("/pos/cart", controllers.GetCart)
			authed.POST("/pos/cart/items", controllers.AddCartItem)
			authed.PATCH("/pos/cart/items/:id", controllers.UpdateCartItemQuantity)
			authed.DELETE("/pos/cart/items/:id", controllers.RemoveCartItem)
			authed.POST("/pos/checkout", controllers.Checkout)
			authed.GET("/sales", controllers.ListSales)

			// Monitoring inventory and history
			authed.GET("/devices", controllers.ListDevices)
			authed.GET("/logs", controllers.ListMaintenanceLogs)

			// Dashboard and tools
			authed.GET("/dashboard", controllers.GetDashboard)
			authed.POST("/tools/storage", controllers.EstimateStorage)
			authed.GET("/tools/bandwidth", controllers.GetBandwidthTable)

			// Assistant
			authed.POST("/assistant/advice", controllers.GetAdvice)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "TechGuard Pro API is running",
	})
}
