package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the HTTP wrapper for the EcoShop product REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new product API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ListProducts fetches the full catalog via GET /products.
func (c *Client) ListProducts(ctx context.Context) ([]productPayload, error) {
	return c.get(ctx, fmt.Sprintf("%s/products", c.baseURL))
}

// SearchProducts performs a text search via GET /products/search?q=.
// Queries are lowercased and trimmed before sending, matching what the
// backend indexes.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]productPayload, error) {
	clean := strings.ToLower(strings.TrimSpace(query))
	return c.get(ctx, fmt.Sprintf("%s/products/search?q=%s", c.baseURL, url.QueryEscape(clean)))
}

// ProductsByCategory lists one category via GET /products/category/{name}.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]productPayload, error) {
	return c.get(ctx, fmt.Sprintf("%s/products/category/%s", c.baseURL, url.PathEscape(category)))
}

func (c *Client) get(ctx context.Context, u string) ([]productPayload, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog API error %d: %s", resp.StatusCode, string(raw))
	}

	var products []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return products, nil
}
