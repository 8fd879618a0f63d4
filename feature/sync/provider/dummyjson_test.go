package provider_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"products-api/feature/sync/provider"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newProvider(t *testing.T, baseURL string, pageSize int) provider.Provider {
	t.Helper()

	p, err := provider.New(provider.Config{
		Type:     "dummyjson",
		BaseURL:  baseURL,
		PageSize: pageSize,
	}, zap.NewNop())
	assert.NoError(t, err)
	return p
}

func TestFetchPageMapsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		fmt.Fprint(w, `{
			"products": [
				{"id": 1, "title": "Phone", "description": "A phone", "price": 499.99, "category": "electronics", "brand": "Acme"},
				{"id": 2, "title": "Laptop", "description": "A laptop", "price": 999.5, "category": "electronics"}
			],
			"total": 5, "skip": 0, "limit": 2
		}`)
	}))
	defer srv.Close()

	p := newProvider(t, srv.URL, 2)
	page, err := p.FetchPage(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, page.Records, 2)

	first := page.Records[0]
	assert.Equal(t, "1", first.ExternalID)
	assert.Equal(t, "Phone", first.Name)
	assert.Equal(t, "A phone", first.Description)
	assert.Equal(t, 499.99, first.Price)
	assert.Equal(t, "electronics", first.Category)
	// The raw payload keeps fields we do not map
	assert.Contains(t, string(first.RawPayload), "Acme")

	// 2 of 5 consumed, next page starts where this one ended
	assert.NotNil(t, page.NextCursor)
	assert.Equal(t, 2, *page.NextCursor)
	assert.NotEmpty(t, page.Raw)
}

func TestFetchPageLastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"products": [{"id": 5, "title": "Last", "price": 1}],
			"total": 5, "skip": 4, "limit": 2
		}`)
	}))
	defer srv.Close()

	p := newProvider(t, srv.URL, 2)
	page, err := p.FetchPage(context.Background(), 4)
	assert.NoError(t, err)
	assert.Len(t, page.Records, 1)
	assert.Nil(t, page.NextCursor)
}

func TestFetchPageEmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"products": [], "total": 0, "skip": 0, "limit": 2}`)
	}))
	defer srv.Close()

	p := newProvider(t, srv.URL, 2)
	page, err := p.FetchPage(context.Background(), 0)
	assert.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Nil(t, page.NextCursor)
}

func TestFetchPageDropsMalformedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"products": [
				{"id": 1, "title": "Good", "price": 10},
				{"id": 0, "title": "No ID", "price": 10},
				{"id": 2, "title": "", "price": 10},
				{"id": 3, "title": "Negative", "price": -5},
				{"id": 4, "title": "Also Good", "price": 20}
			],
			"total": 5, "skip": 0, "limit": 5
		}`)
	}))
	defer srv.Close()

	p := newProvider(t, srv.URL, 5)
	page, err := p.FetchPage(context.Background(), 0)
	assert.NoError(t, err)

	// Malformed records are dropped, the page itself still succeeds
	assert.Len(t, page.Records, 2)
	assert.Equal(t, "1", page.Records[0].ExternalID)
	assert.Equal(t, "4", page.Records[1].ExternalID)
}

func TestFetchPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newProvider(t, srv.URL, 2)
	_, err := p.FetchPage(context.Background(), 6)

	var perr *provider.Error
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, 6, perr.Cursor)
}

func TestFetchPageBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	p := newProvider(t, srv.URL, 2)
	_, err := p.FetchPage(context.Background(), 0)

	var perr *provider.Error
	assert.ErrorAs(t, err, &perr)
}

func TestUnknownProviderType(t *testing.T) {
	_, err := provider.New(provider.Config{Type: "nope"}, zap.NewNop())
	assert.Error(t, err)
}
