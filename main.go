package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/auth"
	"github.com/yeremiapane/store-order-api/config"
	"github.com/yeremiapane/store-order-api/database"
	"github.com/yeremiapane/store-order-api/models"
	"github.com/yeremiapane/store-order-api/router"
	"github.com/yeremiapane/store-order-api/utils"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if cfg.Seed {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
		}
		utils.InfoLogger.Println("Database seeded.")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	r := router.SetupRouter(db, tokens)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Employee{},
		&models.Order{},
		&models.Item{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
