package main

import (
	"fmt"
	"os"

	"dailybudget/internal/config"
	"dailybudget/internal/database"
	"dailybudget/internal/logger"
	"dailybudget/internal/router"
	"dailybudget/internal/validator"

	_ "dailybudget/internal/docs" // Import swagger docs
)

// @title           Daily Budget API
// @version         1.0
// @description     Daily Budget tracks personal expenses, compares them with monthly budgets and exports them for reporting.

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

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	engine := router.New(dbManager.DB(), router.Options{
		CurrencySymbol: appConfig.CurrencySymbol,
		Swagger:        true,
	})

	log.Infow("Starting Daily Budget server",
		"port", appConfig.Port,
		"env", appConfig.Env,
		"db_driver", appConfig.DBDriver,
		"log_level", logger.Level().String(),
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
