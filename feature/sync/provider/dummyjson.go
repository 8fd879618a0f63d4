package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"products-api/feature/sync/models"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DummyJSON fetches product listings from a DummyJSON-compatible endpoint
// (GET {base}?limit={n}&skip={cursor}).
type DummyJSON struct {
	baseURL  string
	pageSize int
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewDummyJSON creates a DummyJSON provider from the configuration.
func NewDummyJSON(cfg Config, logger *zap.Logger) *DummyJSON {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 30
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	return &DummyJSON{
		baseURL:  cfg.BaseURL,
		pageSize: pageSize,
		client:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
		logger:   logger,
	}
}

// Name identifies the provider implementation.
func (p *DummyJSON) Name() string {
	return "dummyjson"
}

// pageEnvelope is the DummyJSON listing response. Products are kept raw so
// each record's original payload survives normalization.
type pageEnvelope struct {
	Products []json.RawMessage `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

// dummyProduct is the subset of DummyJSON product fields we map.
type dummyProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// FetchPage fetches one page starting at the given cursor. Malformed records
// are dropped with a warning; transport and decode failures return a *Error
// for the orchestrator to handle.
func (p *DummyJSON) FetchPage(ctx context.Context, cursor int) (*Page, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, &Error{Cursor: cursor, Err: err}
	}

	url := fmt.Sprintf("%s?limit=%d&skip=%d", p.baseURL, p.pageSize, cursor)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Cursor: cursor, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &Error{Cursor: cursor, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Cursor: cursor, Err: fmt.Errorf("unexpected status code: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Cursor: cursor, Err: err}
	}

	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &Error{Cursor: cursor, Err: fmt.Errorf("decoding listing: %w", err)}
	}

	records := make([]models.ExternalRecord, 0, len(envelope.Products))
	for _, raw := range envelope.Products {
		record, err := p.normalize(raw)
		if err != nil {
			p.logger.Warn("Dropping malformed provider record",
				zap.Int("cursor", cursor),
				zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	page := &Page{Records: records, Raw: body}

	// The listing is exhausted once skip+len crosses the reported total.
	consumed := envelope.Skip + len(envelope.Products)
	if len(envelope.Products) > 0 && consumed < envelope.Total {
		next := consumed
		page.NextCursor = &next
	}

	return page, nil
}

// normalize maps one raw DummyJSON product into the internal record shape.
func (p *DummyJSON) normalize(raw json.RawMessage) (models.ExternalRecord, error) {
	var item dummyProduct
	if err := json.Unmarshal(raw, &item); err != nil {
		return models.ExternalRecord{}, fmt.Errorf("decoding record: %w", err)
	}
	if item.ID <= 0 {
		return models.ExternalRecord{}, fmt.Errorf("missing or invalid product id")
	}
	if item.Title == "" {
		return models.ExternalRecord{}, fmt.Errorf("product %d has no title", item.ID)
	}
	if item.Price < 0 {
		return models.ExternalRecord{}, fmt.Errorf("product %d has negative price", item.ID)
	}

	return models.ExternalRecord{
		ExternalID:  strconv.Itoa(item.ID),
		Name:        item.Title,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		RawPayload:  raw,
	}, nil
}
