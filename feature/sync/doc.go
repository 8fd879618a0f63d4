// Package sync implements the external-source reconciliation job.
//
// A sync run fetches paginated product listings from a configured provider,
// normalizes them and reconciles each record into the local products table
// keyed by external ID: absent records are created, present ones updated.
// Each record commits in its own transaction, so one bad record never aborts
// its batch; per-record failures are tallied in the run report instead.
//
// # Orchestration
//
// The Orchestrator enforces the process-wide invariant that at most one run is
// in flight. Triggers arrive from two paths, the admin HTTP endpoint and the
// periodic Scheduler, both contending for the same gate; a losing trigger is
// rejected with the running ID, never queued. A page fetch failure aborts the
// run as failed while keeping the counts accumulated so far. Every run is
// bounded by a configurable timeout so a hung provider cannot wedge the gate.
//
// # Status
//
// Run state is published as an immutable snapshot swapped through an atomic
// pointer: the status endpoint reads without locking and never observes a
// partially updated report. Only the last completed run is retained.
package sync
