package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"products-api/core/config"
	"products-api/core/database"
	"products-api/core/loader"
	"products-api/core/logger"
	"products-api/core/middleware/requestid"
	"products-api/core/storage"

	"products-api/feature/auth"
	"products-api/feature/product"
	"products-api/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "products-api/docs/swagger"
)

// @title Products API
// @version 1.0
// @description REST API for product management with JWT authentication and external synchronization.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the products API server",
	Long:  `Starts the HTTP server, loads all enabled features and runs the sync scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Archival Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(cmd.Context(), store, cfg.Storage.Bucket); err != nil {
				logg.Warn("Archival bucket check failed, archival disabled", zap.Error(err))
				store = nil
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// Middleware Registration
		// Request ID must be first to trace everything
		app.Use(requestid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "healthy"})
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		syncFeature, err := sync.NewFeature(db, logg, cfg.Sync, cfg.Server, store, cfg.Storage.Bucket)
		if err != nil {
			logg.Fatal("Failed to initialize sync feature", zap.Error(err))
		}

		mgr.Register(auth.NewFeature(db, logg, cfg.Server))
		mgr.Register(product.NewFeature(db, logg, cfg.Server))
		mgr.Register(syncFeature)

		api := app.Group("/api/v1")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Sync Scheduler
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if syncFeature.IsEnabled() {
			go syncFeature.Scheduler().Run(ctx)
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
