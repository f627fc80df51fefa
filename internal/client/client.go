// Package client implements the sonnys.Client interface over the HTTP
// transport.
package client

import (
	"github.com/washmetrics/sonnys-go/internal/constants"
	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// Client implements the sonnys.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     sonnys.Logger

	// Resource clients
	customers    sonnys.CustomersClient
	employees    sonnys.EmployeesClient
	giftcards    sonnys.GiftcardsClient
	items        sonnys.ItemsClient
	sites        sonnys.SitesClient
	washbooks    sonnys.WashbooksClient
	recurring    sonnys.RecurringClient
	transactions sonnys.TransactionsClient
	stats        sonnys.StatsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *sonnys.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 || config.RetryBaseDelay > 0 {
		retryMax := constants.DefaultRetryMax
		baseDelay := constants.DefaultRetryBaseDelay

		if config.RetryMax > 0 {
			retryMax = config.RetryMax
		}

		if config.RetryBaseDelay > 0 {
			baseDelay = config.RetryBaseDelay
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, baseDelay))
	}

	if config.RateLimitCapacity > 0 || config.RateLimitWindow > 0 {
		capacity := constants.DefaultRateLimitCapacity
		window := constants.DefaultRateLimitWindow

		if config.RateLimitCapacity > 0 {
			capacity = config.RateLimitCapacity
		}

		if config.RateLimitWindow > 0 {
			window = config.RateLimitWindow
		}

		httpOpts = append(httpOpts, http.WithRateLimit(capacity, window))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RequestHooks != nil || config.ResponseHooks != nil {
		httpOpts = append(httpOpts, http.WithHooks(config.RequestHooks, config.ResponseHooks))
	}

	return httpOpts
}

// New creates a new API client from config.
func New(config *sonnys.Config) (*Client, error) {
	if config == nil {
		return nil, sonnys.ErrConfigRequired
	}

	if config.APIID == "" {
		return nil, sonnys.ErrAPIIDRequired
	}

	if config.APIKey == "" {
		return nil, sonnys.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	credentials := http.Credentials{
		APIID:    config.APIID,
		APIKey:   config.APIKey,
		SiteCode: config.SiteCode,
	}

	httpClient := http.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients(config)

	return client, nil
}

// initializeResourceClients wires up all resource clients over the shared
// HTTP transport.
func (c *Client) initializeResourceClients(config *sonnys.Config) {
	pollInterval := constants.DefaultPollInterval
	if config != nil && config.PollInterval > 0 {
		pollInterval = config.PollInterval
	}

	pollTimeout := constants.DefaultPollTimeout
	if config != nil && config.PollTimeout > 0 {
		pollTimeout = config.PollTimeout
	}

	chunkMaxDays := constants.DefaultChunkMaxDays
	if config != nil && config.ChunkMaxDays > 0 {
		chunkMaxDays = config.ChunkMaxDays
	}

	c.customers = NewCustomersClient(c.httpClient)
	c.employees = NewEmployeesClient(c.httpClient, chunkMaxDays)
	c.giftcards = NewGiftcardsClient(c.httpClient)
	c.items = NewItemsClient(c.httpClient)
	c.sites = NewSitesClient(c.httpClient)
	c.washbooks = NewWashbooksClient(c.httpClient)
	c.recurring = NewRecurringClient(c.httpClient)

	transactions := NewTransactionsClient(c.httpClient)
	transactions.pollInterval = pollInterval
	transactions.pollTimeout = pollTimeout
	transactions.chunkMaxDays = chunkMaxDays
	c.transactions = transactions

	c.stats = NewStatsClient(c.transactions, c.recurring)
}

// Customers implements sonnys.Client.Customers.
func (c *Client) Customers() sonnys.CustomersClient {
	return c.customers
}

// Employees implements sonnys.Client.Employees.
func (c *Client) Employees() sonnys.EmployeesClient {
	return c.employees
}

// Giftcards implements sonnys.Client.Giftcards.
func (c *Client) Giftcards() sonnys.GiftcardsClient {
	return c.giftcards
}

// Items implements sonnys.Client.Items.
func (c *Client) Items() sonnys.ItemsClient {
	return c.items
}

// Sites implements sonnys.Client.Sites.
func (c *Client) Sites() sonnys.SitesClient {
	return c.sites
}

// Washbooks implements sonnys.Client.Washbooks.
func (c *Client) Washbooks() sonnys.WashbooksClient {
	return c.washbooks
}

// Recurring implements sonnys.Client.Recurring.
func (c *Client) Recurring() sonnys.RecurringClient {
	return c.recurring
}

// Transactions implements sonnys.Client.Transactions.
func (c *Client) Transactions() sonnys.TransactionsClient {
	return c.transactions
}

// Stats implements sonnys.Client.Stats.
func (c *Client) Stats() sonnys.StatsClient {
	return c.stats
}
