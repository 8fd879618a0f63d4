package models

import (
	"encoding/json"
	"time"
)

// ExternalRecord is the normalized shape of one provider record.
// It is transient: produced by the provider adapter, consumed by the
// reconciler, never persisted directly.
type ExternalRecord struct {
	ExternalID  string
	Name        string
	Description string
	Price       float64
	Category    string
	RawPayload  json.RawMessage
}

// RunStatus is the lifecycle state of a sync run.
type RunStatus string

const (
	StatusPending   RunStatus = "pending"
	StatusRunning   RunStatus = "running"
	StatusSucceeded RunStatus = "succeeded"
	StatusFailed    RunStatus = "failed"
)

// RecordError describes a single failure during a run. Record-level failures
// carry the external ID; run-level provider failures leave it empty.
type RecordError struct {
	ExternalID string `json:"external_id"`
	Reason     string `json:"reason"`
}

// SyncRun tracks one execution of the reconciliation job.
// At completion records_created + records_updated + records_failed equals
// records_fetched.
type SyncRun struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     *time.Time    `json:"finished_at"`
	Status         RunStatus     `json:"status"`
	RecordsFetched int           `json:"records_fetched"`
	RecordsCreated int           `json:"records_created"`
	RecordsUpdated int           `json:"records_updated"`
	RecordsFailed  int           `json:"records_failed"`
	Errors         []RecordError `json:"errors"`
}

// Clone returns a deep copy of the run. Published snapshots are clones so
// readers never observe in-place mutation by the run goroutine.
func (r *SyncRun) Clone() *SyncRun {
	if r == nil {
		return nil
	}
	cp := *r
	if r.FinishedAt != nil {
		t := *r.FinishedAt
		cp.FinishedAt = &t
	}
	cp.Errors = make([]RecordError, len(r.Errors))
	copy(cp.Errors, r.Errors)
	return &cp
}

// StatusSnapshot is the immutable view served by the status endpoint.
// Current is nil when no run is in flight; LastCompleted holds the single-slot
// history of the most recent finished run.
type StatusSnapshot struct {
	Current       *SyncRun `json:"current"`
	LastCompleted *SyncRun `json:"last_completed"`
}
