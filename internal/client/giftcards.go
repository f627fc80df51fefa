package client

import (
	"context"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// GiftcardsClient implements sonnys.GiftcardsClient.
type GiftcardsClient struct {
	httpClient *http.Client
}

// NewGiftcardsClient creates a new giftcards client.
func NewGiftcardsClient(httpClient *http.Client) *GiftcardsClient {
	return &GiftcardsClient{
		httpClient: httpClient,
	}
}

// List implements sonnys.GiftcardsClient.List. The liability list reports
// every outstanding card with its remaining value. The path typo
// ("liablilty") is intentional; it is how the upstream endpoint is spelled.
func (c *GiftcardsClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.GiftcardListItem, error) {
	return fetchAllPages[sonnys.GiftcardListItem](ctx, c.httpClient, "/giftcard-liablilty", "giftcards", params)
}
