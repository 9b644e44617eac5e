package main

import (
	"conference-management-api/config"
	"conference-management-api/middleware"
	"conference-management-api/routes"
	"conference-management-api/services"
	"conference-management-api/utils"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize logging and database
	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}
	config.InitDB()

	// Seed the initial admin account (no-op when one already exists)
	if err := services.EnsureAdmin(
		os.Getenv("SEED_ADMIN_EMAIL"),
		os.Getenv("SEED_ADMIN_PASSWORD"),
		os.Getenv("SEED_ADMIN_NAME"),
	); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Register /logs route early (before 404 catch-all in SetupRoutes)
	router.GET("/logs", func(c *gin.Context) {
		accessToken := os.Getenv("LOG_ACCESS_TOKEN")
		if accessToken == "" || c.Query("token") != accessToken {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(500, gin.H{"error": "Unable to read log"})
			return
		}

		c.Data(200, "text/plain; charset=utf-8", logData)
	})

	// Setup routes
	routes.SetupRoutes(router)

	// Create upload directory if not exists
	if err := os.MkdirAll(utils.UploadBasePath(), os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create upload directory: %v", err)
	}

	// Start server
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
