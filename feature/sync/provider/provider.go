package provider

import (
	"context"
	"fmt"

	"products-api/feature/sync/models"

	"go.uber.org/zap"
)

// Page is one fetched page of normalized records.
type Page struct {
	// Records holds the normalized records in provider order.
	Records []models.ExternalRecord
	// NextCursor is the cursor of the following page, nil on the last page.
	NextCursor *int
	// Raw is the raw response body, kept for optional archival.
	Raw []byte
}

// Provider fetches paginated product listings from an external source.
// Implementations normalize provider-specific fields into ExternalRecord and
// must not retry internally; a failed page fetch returns a *Error carrying
// the cursor so the orchestrator can decide.
type Provider interface {
	// Name identifies the provider implementation.
	Name() string
	// FetchPage fetches one page starting at the given cursor.
	FetchPage(ctx context.Context, cursor int) (*Page, error)
}

// Error is a page-level fetch or decode failure.
type Error struct {
	// Cursor is the page cursor the failure occurred at.
	Cursor int
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider fetch failed at cursor %d: %v", e.Cursor, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a provider based on the configuration.
func New(cfg Config, logger *zap.Logger) (Provider, error) {
	switch cfg.Type {
	case "dummyjson":
		return NewDummyJSON(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}
