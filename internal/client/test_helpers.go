package client

import (
	"encoding/json"
	"net/http"
	"time"

	internalhttp "github.com/washmetrics/sonnys-go/internal/http"
)

// newTestHTTPClient creates an HTTP transport pointed at a test server, with
// a wide-open rate limiter and fast retries so tests never stall.
func newTestHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL,
		internalhttp.Credentials{APIID: "test-id", APIKey: "test-key"},
		internalhttp.WithRateLimit(1000, time.Second),
		internalhttp.WithRetryConfig(1, time.Millisecond),
	)
}

// NewTestClient creates a fully wired client against a test server.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: newTestHTTPClient(baseURL),
		baseURL:    baseURL,
	}

	client.initializeResourceClients(nil)

	return client
}

// writeListPage writes one page of a paginated list response in the standard
// data envelope.
func writeListPage(w http.ResponseWriter, itemsKey string, items interface{}, offset, limit, total int) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data": map[string]interface{}{
			itemsKey: items,
			"offset": offset,
			"limit":  limit,
			"total":  total,
		},
	})
}

// writeDetail writes a detail response in the standard data envelope.
func writeDetail(w http.ResponseWriter, record interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": record})
}
