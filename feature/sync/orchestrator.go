package sync

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"products-api/core/storage"
	"products-api/feature/sync/models"
	"products-api/feature/sync/provider"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// AlreadyRunningError is returned by Trigger while a run is in flight.
// It carries the ID of the running sync so callers can poll its status.
type AlreadyRunningError struct {
	RunID string
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("sync already running: %s", e.RunID)
}

// Orchestrator drives sync runs. It enforces the at-most-one-run invariant,
// walks the provider's pages through the reconciler and publishes immutable
// status snapshots for the status endpoint.
type Orchestrator struct {
	provider   provider.Provider
	reconciler *Reconciler
	logger     *zap.Logger
	// runTimeout bounds a run so a hung provider cannot hold the gate forever.
	runTimeout time.Duration

	// archive is optional; nil disables raw page archival.
	archive storage.Client
	bucket  string

	mu       sync.Mutex
	inFlight bool
	current  *models.SyncRun

	snapshot atomic.Pointer[models.StatusSnapshot]
}

// NewOrchestrator creates a new orchestrator.
func NewOrchestrator(p provider.Provider, r *Reconciler, logger *zap.Logger, runTimeout time.Duration) *Orchestrator {
	o := &Orchestrator{
		provider:   p,
		reconciler: r,
		logger:     logger,
		runTimeout: runTimeout,
	}
	o.snapshot.Store(&models.StatusSnapshot{})
	return o
}

// EnableArchive turns on raw page archival into the given bucket.
func (o *Orchestrator) EnableArchive(client storage.Client, bucket string) {
	o.archive = client
	o.bucket = bucket
}

// Trigger starts a new sync run and returns its ID. While a run is in flight
// it returns an *AlreadyRunningError with the running ID; triggers are never
// queued, callers retry or wait for the next scheduled tick.
func (o *Orchestrator) Trigger() (string, error) {
	run, err := o.begin()
	if err != nil {
		return "", err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), o.runTimeout)
		defer cancel()
		o.execute(ctx, run)
	}()

	return run.RunID, nil
}

// RunOnce performs one blocking sync pass through the same gate as Trigger.
// Used by the CLI sync command.
func (o *Orchestrator) RunOnce(ctx context.Context) (*models.SyncRun, error) {
	run, err := o.begin()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, o.runTimeout)
	defer cancel()
	o.execute(ctx, run)

	return run.Clone(), nil
}

// begin performs the pending-to-running transition under the run gate.
func (o *Orchestrator) begin() (*models.SyncRun, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight {
		return nil, &AlreadyRunningError{RunID: o.current.RunID}
	}

	run := &models.SyncRun{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Status:    models.StatusPending,
		Errors:    []models.RecordError{},
	}
	o.inFlight = true
	o.current = run
	run.Status = models.StatusRunning
	o.publish(run, nil)

	return run, nil
}

// Status returns the latest published snapshot. It never blocks on an
// in-flight run; the snapshot is an immutable value swapped atomically by the
// run goroutine.
func (o *Orchestrator) Status() *models.StatusSnapshot {
	return o.snapshot.Load()
}

// execute walks all provider pages for one run. Only this goroutine mutates
// the run after Trigger returns. A page fetch failure aborts the run as
// failed, keeping the counts accumulated so far.
func (o *Orchestrator) execute(ctx context.Context, run *models.SyncRun) {
	o.logger.Info("Sync run started",
		zap.String("run_id", run.RunID),
		zap.String("provider", o.provider.Name()))

	cursor := 0
	for {
		page, err := o.provider.FetchPage(ctx, cursor)
		if err != nil {
			run.Errors = append(run.Errors, models.RecordError{Reason: err.Error()})
			o.finish(run, models.StatusFailed)
			o.logger.Error("Sync run aborted on page fetch",
				zap.String("run_id", run.RunID),
				zap.Int("cursor", cursor),
				zap.Error(err))
			return
		}

		report := o.reconciler.ReconcileBatch(ctx, page.Records)
		run.RecordsFetched += report.Fetched
		run.RecordsCreated += report.Created
		run.RecordsUpdated += report.Updated
		run.RecordsFailed += report.Failed
		run.Errors = append(run.Errors, report.Errors...)

		o.archivePage(ctx, run.RunID, cursor, page.Raw)
		o.publish(run, nil)

		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}

	o.finish(run, models.StatusSucceeded)
	o.logger.Info("Sync run finished",
		zap.String("run_id", run.RunID),
		zap.Int("fetched", run.RecordsFetched),
		zap.Int("created", run.RecordsCreated),
		zap.Int("updated", run.RecordsUpdated),
		zap.Int("failed", run.RecordsFailed))
}

// finish completes the run, releases the gate and publishes the final snapshot.
func (o *Orchestrator) finish(run *models.SyncRun, status models.RunStatus) {
	now := time.Now().UTC()
	run.Status = status
	run.FinishedAt = &now

	o.mu.Lock()
	o.inFlight = false
	o.current = nil
	o.publish(nil, run)
	o.mu.Unlock()
}

// publish swaps in a new immutable snapshot. current is cloned so readers
// never share state with the run goroutine; the previous last-completed run is
// carried over unless a newly finished one replaces it.
func (o *Orchestrator) publish(current, completed *models.SyncRun) {
	prev := o.snapshot.Load()

	last := prev.LastCompleted
	if completed != nil {
		last = completed.Clone()
	}

	o.snapshot.Store(&models.StatusSnapshot{
		Current:       current.Clone(),
		LastCompleted: last,
	})
}

// archivePage stores the raw page body for audit when archival is enabled.
// Archival failures are logged, never fatal to the run.
func (o *Orchestrator) archivePage(ctx context.Context, runID string, cursor int, raw []byte) {
	if o.archive == nil || len(raw) == 0 {
		return
	}

	objectName := fmt.Sprintf("sync/runs/%s/page-%d.json", runID, cursor)
	_, err := o.archive.PutObject(ctx, o.bucket, objectName,
		bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		o.logger.Warn("Raw page archival failed",
			zap.String("run_id", runID),
			zap.Int("cursor", cursor),
			zap.Error(err))
	}
}
