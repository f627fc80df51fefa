package client

import (
	"context"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// ItemsClient implements sonnys.ItemsClient.
type ItemsClient struct {
	httpClient *http.Client
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient *http.Client) *ItemsClient {
	return &ItemsClient{
		httpClient: httpClient,
	}
}

// List implements sonnys.ItemsClient.List.
func (c *ItemsClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.Item, error) {
	return fetchAllPages[sonnys.Item](ctx, c.httpClient, "/item", "items", params)
}
