package client

import (
	"context"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// SitesClient implements sonnys.SitesClient.
type SitesClient struct {
	httpClient *http.Client
}

// NewSitesClient creates a new sites client.
func NewSitesClient(httpClient *http.Client) *SitesClient {
	return &SitesClient{
		httpClient: httpClient,
	}
}

// List implements sonnys.SitesClient.List. The site endpoint returns every
// record in one response; it carries no pagination counters.
func (c *SitesClient) List(ctx context.Context) ([]sonnys.Site, error) {
	return fetchUnpaginated[sonnys.Site](ctx, c.httpClient, "/site/list", "sites", nil)
}
