package client

import (
	"context"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// WashbooksClient implements sonnys.WashbooksClient.
type WashbooksClient struct {
	httpClient *http.Client
}

// NewWashbooksClient creates a new washbooks client.
func NewWashbooksClient(httpClient *http.Client) *WashbooksClient {
	return &WashbooksClient{
		httpClient: httpClient,
	}
}

// List implements sonnys.WashbooksClient.List.
func (c *WashbooksClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.WashbookListItem, error) {
	return fetchAllPages[sonnys.WashbookListItem](ctx, c.httpClient, "/washbook/account/list", "accounts", params)
}

// Get implements sonnys.WashbooksClient.Get.
func (c *WashbooksClient) Get(ctx context.Context, id string) (*sonnys.Washbook, error) {
	return fetchSingle[sonnys.Washbook](ctx, c.httpClient, "/washbook/account/"+id+"/detail")
}
