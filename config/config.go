package config

import (
	"fmt"
	"log"
	"os"

	"github.com/rochiyat/mutabaah-app/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB loads the environment, connects to Postgres and migrates the
// schema. The handle is returned rather than kept in a package global so
// every service receives it explicitly.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Record{},
		&models.Group{},
		&models.GroupActivity{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}
