// Package storage provides the object storage client used for raw payload archival.
//
// During a sync run the orchestrator can archive every raw provider page into a
// bucket for later audit. The package wraps the Minio S3 client behind a small
// Client interface so features depend on capabilities rather than the concrete
// SDK, which also keeps handlers and services testable through the mocks
// subpackage.
//
// Archival is optional: when storage is disabled in configuration no client is
// created and sync runs simply skip the archival step.
package storage
