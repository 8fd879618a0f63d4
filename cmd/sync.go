package cmd

import (
	"context"
	"fmt"

	"products-api/core/config"
	"products-api/core/database"
	"products-api/core/logger"
	"products-api/feature/sync"
	"products-api/feature/sync/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a single product sync pass and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one product sync pass against the external provider",
	Long: `Fetch all product pages from the configured external provider and
reconcile them into the local products table, then exit.

The pass is bounded by the configured run timeout. A non-zero exit code
means the run failed; individual record failures are tolerated and only
reported in the final counts.`,
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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

	l.Info("Starting one-shot product sync")

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// The CLI pass never archives raw pages; that path belongs to the server.
	feature, err := sync.NewFeature(db, l, cfg.Sync, cfg.Server, nil, "")
	if err != nil {
		return fmt.Errorf("failed to build sync feature: %w", err)
	}

	run, err := feature.Orchestrator().RunOnce(context.Background())
	if err != nil {
		return fmt.Errorf("failed to start sync run: %w", err)
	}

	printSyncReport(l, run)

	if run.Status != models.StatusSucceeded {
		return fmt.Errorf("sync run %s finished with status %s", run.RunID, run.Status)
	}

	return nil
}

// printSyncReport prints the final run counts using logger.
func printSyncReport(l *zap.Logger, run *models.SyncRun) {
	l.Info("Sync run report",
		zap.String("run_id", run.RunID),
		zap.String("status", string(run.Status)),
		zap.Int("fetched", run.RecordsFetched),
		zap.Int("created", run.RecordsCreated),
		zap.Int("updated", run.RecordsUpdated),
		zap.Int("failed", run.RecordsFailed),
	)

	if len(run.Errors) == 0 {
		return
	}

	// Show a sample of record errors (max 5 for logger)
	maxShow := 5
	if len(run.Errors) < maxShow {
		maxShow = len(run.Errors)
	}
	for i := 0; i < maxShow; i++ {
		e := run.Errors[i]
		l.Warn("Record error",
			zap.String("external_id", e.ExternalID),
			zap.String("reason", e.Reason),
		)
	}
	if len(run.Errors) > maxShow {
		l.Warn("Additional record errors not shown", zap.Int("count", len(run.Errors)-maxShow))
	}
}
