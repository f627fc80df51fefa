package client

import (
	"context"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// RecurringClient implements sonnys.RecurringClient.
type RecurringClient struct {
	httpClient *http.Client
}

// NewRecurringClient creates a new recurring accounts client.
func NewRecurringClient(httpClient *http.Client) *RecurringClient {
	return &RecurringClient{
		httpClient: httpClient,
	}
}

// List implements sonnys.RecurringClient.List.
func (c *RecurringClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.RecurringListItem, error) {
	return fetchAllPages[sonnys.RecurringListItem](ctx, c.httpClient, "/recurring/account/list", "accounts", params)
}

// Get implements sonnys.RecurringClient.Get.
func (c *RecurringClient) Get(ctx context.Context, id string) (*sonnys.Recurring, error) {
	return fetchSingle[sonnys.Recurring](ctx, c.httpClient, "/recurring/account/"+id+"/detail")
}

// ListStatusChanges implements sonnys.RecurringClient.ListStatusChanges.
// Status-change records use snake_case field names, unlike every other
// endpoint.
func (c *RecurringClient) ListStatusChanges(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.RecurringStatusChange, error) {
	return fetchAllPages[sonnys.RecurringStatusChange](ctx, c.httpClient, "/recurring/account/status-list", "accounts", params)
}

// ListModifications implements sonnys.RecurringClient.ListModifications.
func (c *RecurringClient) ListModifications(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.RecurringModification, error) {
	return fetchAllPages[sonnys.RecurringModification](ctx, c.httpClient, "/recurring/account/modifications", "accounts", params)
}

// ListDetails implements sonnys.RecurringClient.ListDetails. Unlike List,
// which returns summaries, this returns full detail records in bulk.
func (c *RecurringClient) ListDetails(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.Recurring, error) {
	return fetchAllPages[sonnys.Recurring](ctx, c.httpClient, "/recurring/account/details/list", "accounts", params)
}
