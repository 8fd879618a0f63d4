package sync

import (
	"products-api/core/middleware/auth"
	"products-api/core/server"
	"products-api/core/storage"
	"products-api/feature/sync/provider"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg          Config
	orchestrator *Orchestrator
	scheduler    *Scheduler
	handler      *Handler
}

// NewFeature creates a new Sync feature. store may be nil, which disables
// raw page archival.
func NewFeature(db *gorm.DB, logger *zap.Logger, cfg Config, serverCfg server.Config, store storage.Client, bucket string) (*Feature, error) {
	prov, err := provider.New(cfg.Provider, logger)
	if err != nil {
		return nil, err
	}

	reconciler := NewReconciler(db, logger)
	orchestrator := NewOrchestrator(prov, reconciler, logger, cfg.RunTimeout())
	if store != nil {
		orchestrator.EnableArchive(store, bucket)
	}

	scheduler := NewScheduler(orchestrator, cfg.Interval(), logger)

	authGuard := auth.New(auth.Config{Secret: serverCfg.JwtSecret})
	adminGuard := auth.RequireRole("admin")
	h := NewHandler(orchestrator, authGuard, adminGuard)

	return &Feature{
		cfg:          cfg,
		orchestrator: orchestrator,
		scheduler:    scheduler,
		handler:      h,
	}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Orchestrator exposes the run orchestrator for CLI use.
func (f *Feature) Orchestrator() *Orchestrator {
	return f.orchestrator
}

// Scheduler exposes the periodic scheduler so the server command can run it.
func (f *Feature) Scheduler() *Scheduler {
	return f.scheduler
}
