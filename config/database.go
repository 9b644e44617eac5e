package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"conference-management-api/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
	var err error

	// Get database credentials from environment variables
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbDatabase := os.Getenv("DB_DATABASE")
	dbUsername := os.Getenv("DB_USERNAME")
	dbPassword := os.Getenv("DB_PASSWORD")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUsername,
		dbPassword,
		dbHost,
		dbPort,
		dbDatabase,
	)

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	DB, err = gorm.Open(mysql.Open(dsn), gormConfig(logLevel))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connected successfully")

	if strings.ToLower(os.Getenv("AUTO_MIGRATE")) == "true" {
		if err := MigrateDB(DB); err != nil {
			log.Fatal("Failed to migrate database schema:", err)
		}
	}
}

// gormConfig builds the shared gorm configuration. TranslateError is required:
// without it duplicate-key inserts surface as raw driver errors instead of
// gorm.ErrDuplicatedKey, and the reviewer-assignment uniqueness backstop never
// sees the conflict.
func gormConfig(logLevel logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
		TranslateError: true,
	}
}

// MigrateDB applies the schema for every workflow entity. The unique index on
// submission_reviews (submission_id, reviewer_id) backs the reviewer-assignment
// uniqueness guarantee.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Conference{},
		&models.Submission{},
		&models.Review{},
		&models.Document{},
		&models.ScheduleItem{},
		&models.UserToken{},
	)
}
