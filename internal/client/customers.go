package client

import (
	"context"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// CustomersClient implements sonnys.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
	}
}

// List implements sonnys.CustomersClient.List. Supports first_name,
// last_name, and phone_number search filters via params.
func (c *CustomersClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.CustomerListItem, error) {
	return fetchAllPages[sonnys.CustomerListItem](ctx, c.httpClient, "/customer", "customers", params)
}

// Get implements sonnys.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) (*sonnys.Customer, error) {
	return fetchSingle[sonnys.Customer](ctx, c.httpClient, "/customer/"+id)
}
