package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agent-dashboard/model"
)

// APIClient reads record collections from the backend REST API.
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewAPIClient creates a client for the backend API. The token is optional;
// when set it is sent as a bearer token.
func NewAPIClient(baseURL, token string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) Bookings(ctx context.Context) ([]model.Record, error) {
	return c.fetch(ctx, "/api/bookings")
}

func (c *APIClient) Inquiries(ctx context.Context) ([]model.Record, error) {
	return c.fetch(ctx, "/api/inquiries")
}

func (c *APIClient) fetch(ctx context.Context, path string) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %v", path, resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fetch %s: decode response: %w", path, err)
	}

	return DecodeRecords(payload), nil
}

// DecodeRecords interprets a response payload as a record collection. The
// backend answers either a bare JSON array or a {"data": [...]} envelope
// depending on its version; anything that is not an array of objects is
// treated as an empty collection.
func DecodeRecords(v any) []model.Record {
	switch payload := v.(type) {
	case []any:
		out := make([]model.Record, 0, len(payload))
		for _, el := range payload {
			if m, ok := el.(map[string]any); ok {
				out = append(out, model.Record(m))
			}
		}
		return out
	case map[string]any:
		if data, ok := payload["data"]; ok {
			return DecodeRecords(data)
		}
	}
	return []model.Record{}
}
