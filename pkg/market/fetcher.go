package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/debugger-labs/debugger-go/pkg/model"
)

// HTTPFetcher dereferences token URIs over plain HTTP. Token URIs point at
// public objects in the metadata store, so no authentication is involved.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher builds a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads and decodes one public metadata document.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*model.PublicMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var meta model.PublicMetadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("metadata is not valid JSON: %w", err)
	}
	return &meta, nil
}
