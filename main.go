package main

import (
	"log"
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/logger"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Initialize(config.C.Env)
	defer logger.Log.Sync()

	if config.C.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Log))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Orders API",
		})
	})

	routes.SetupRoutes(r)

	logger.Log.Info("server starting", zap.String("port", config.C.Port))
	if err := r.Run(":" + config.C.Port); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}
