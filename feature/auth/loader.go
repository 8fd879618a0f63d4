package auth

import (
	"time"

	"products-api/core/middleware/auth"
	"products-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Auth feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, cfg server.Config) *Feature {
	svc := NewService(db, logger, cfg.JwtSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authGuard := auth.New(auth.Config{Secret: cfg.JwtSecret})
	adminGuard := auth.RequireRole("admin")
	h := NewHandler(svc, authGuard, adminGuard)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auth"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
