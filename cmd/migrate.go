package cmd

import (
	"fmt"

	"products-api/core/config"
	"products-api/core/database"
	"products-api/core/logger"
	authModels "products-api/feature/auth/models"
	productModels "products-api/feature/product/models"

	"github.com/spf13/cobra"
)

// migrateCmd applies the database schema for all features.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update the users and products tables to match the current models.`,
	RunE:  runMigrate,
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	l.Info("Applying database schema")

	if err := db.AutoMigrate(&authModels.User{}, &productModels.Product{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	l.Info("Database schema up to date")
	return nil
}
