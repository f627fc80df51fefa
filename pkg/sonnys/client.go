package sonnys

import (
	"context"
	"time"
)

// Client is the top-level interface for the Sonny's CarWash Controls Data
// API. Resource accessors return typed clients backed by a shared HTTP
// pipeline; one Client instance owns one rate limiter.
type Client interface {
	Customers() CustomersClient
	Employees() EmployeesClient
	Giftcards() GiftcardsClient
	Items() ItemsClient
	Sites() SitesClient
	Washbooks() WashbooksClient
	Recurring() RecurringClient
	Transactions() TransactionsClient
	Stats() StatsClient
}

// CustomersClient provides access to the /customer endpoints.
type CustomersClient interface {
	List(ctx context.Context, params *QueryParams) ([]CustomerListItem, error)
	Get(ctx context.Context, id string) (*Customer, error)
}

// EmployeesClient provides access to the /employee endpoints.
type EmployeesClient interface {
	List(ctx context.Context, params *QueryParams) ([]EmployeeListItem, error)
	Get(ctx context.Context, id string) (*Employee, error)
	// ClockEntries fetches time-tracking records for one employee over a
	// calendar date range. The upstream endpoint caps the span of a single
	// call, so wide ranges are split into chunks transparently.
	ClockEntries(ctx context.Context, employeeID string, startDate, endDate string) ([]ClockEntry, error)
}

// GiftcardsClient provides access to the /giftcard endpoints.
type GiftcardsClient interface {
	List(ctx context.Context, params *QueryParams) ([]GiftcardListItem, error)
}

// ItemsClient provides access to the /item endpoints.
type ItemsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Item, error)
}

// SitesClient provides access to the /site endpoint.
type SitesClient interface {
	List(ctx context.Context) ([]Site, error)
}

// WashbooksClient provides access to the /washbook/account endpoints.
type WashbooksClient interface {
	List(ctx context.Context, params *QueryParams) ([]WashbookListItem, error)
	Get(ctx context.Context, id string) (*Washbook, error)
}

// RecurringClient provides access to the /recurring/account endpoints.
type RecurringClient interface {
	List(ctx context.Context, params *QueryParams) ([]RecurringListItem, error)
	Get(ctx context.Context, id string) (*Recurring, error)
	ListStatusChanges(ctx context.Context, params *QueryParams) ([]RecurringStatusChange, error)
	ListModifications(ctx context.Context, params *QueryParams) ([]RecurringModification, error)
	ListDetails(ctx context.Context, params *QueryParams) ([]Recurring, error)
}

// TransactionsClient provides access to the /transaction endpoints,
// including the bulk-export batch job workflow.
type TransactionsClient interface {
	List(ctx context.Context, params *QueryParams) ([]TransactionListItem, error)
	Get(ctx context.Context, id string) (*Transaction, error)
	// ListByType fetches all transactions of one type. Valid types include
	// wash, prepaid-wash, recurring, washbook, giftcard, merchandise, and
	// house-account; the API validates the value.
	ListByType(ctx context.Context, itemType string, params *QueryParams) ([]TransactionListItem, error)
	// ListV2 fetches enriched transaction summaries carrying customer ID,
	// recurring plan flags, and transaction status.
	ListV2(ctx context.Context, params *QueryParams) ([]TransactionV2ListItem, error)
	// LoadJob submits a bulk-export batch job for a Unix-timestamp range and
	// polls it to completion, paging through additional jobs as needed.
	LoadJob(ctx context.Context, query *LoadJobQuery) ([]TransactionJobItem, error)
	// LoadJobRange splits a calendar date range into windows no wider than
	// the upstream maximum span and runs one LoadJob per window.
	LoadJobRange(ctx context.Context, startDate, endDate string) ([]TransactionJobItem, error)
}

// StatsClient computes business KPIs by fetching raw records in bulk and
// aggregating them locally. Start and end accept ISO-8601 strings or
// time.Time values via DateInput.
type StatsClient interface {
	TotalSales(ctx context.Context, start, end DateInput) (*SalesResult, error)
	TotalWashes(ctx context.Context, start, end DateInput) (*WashResult, error)
	ConversionRate(ctx context.Context, start, end DateInput) (*ConversionResult, error)
	MembershipChanges(ctx context.Context, start, end DateInput) (*MembershipChangesResult, error)
	// Report computes every KPI from one shared set of bulk fetches instead
	// of re-fetching per method.
	Report(ctx context.Context, start, end DateInput) (*StatsReport, error)
}

// LoadJobQuery holds the criteria for one batch-export submission.
type LoadJobQuery struct {
	// StartDate and EndDate are Unix timestamps bounding the export.
	StartDate int64 `json:"startDate" yaml:"startDate"`
	EndDate   int64 `json:"endDate"   yaml:"endDate"`
	// Site optionally scopes the export to one site code.
	Site string `json:"site,omitempty" yaml:"site,omitempty"`
}

// Logger is the structured logging port for the SDK. The hosting application
// wires it to its logging infrastructure; no ambient global is used.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a sonnys.Client.
//
// # Rate limiting
//
// Each client instance paces itself with its own sliding-window limiter
// (RateLimitCapacity requests per RateLimitWindow). The upstream quota is
// enforced per credential: multiple instances sharing one credential can
// collectively exceed the server quota even though each respects its local
// limiter. The 429 retry path absorbs that contention.
//
// # Timeouts and retries
//
// Every HTTP exchange carries a bounded timeout (HTTPTimeout). Only 429
// responses are retried, up to RetryMax times with exponential backoff
// starting at RetryBaseDelay. Connection failures and all other status
// errors surface immediately.
type Config struct {
	// APIID is the Sonny's API ID credential (required).
	APIID string
	// APIKey is the Sonny's API key credential (required).
	APIKey string
	// SiteCode optionally scopes every request to one site.
	SiteCode string
	// BaseURL overrides the production endpoint; mainly for tests.
	BaseURL string

	// RetryMax is the maximum number of 429 retries. Defaults to 3.
	RetryMax int
	// RetryBaseDelay is the first 429 backoff delay; each retry doubles it.
	// Defaults to 1s.
	RetryBaseDelay time.Duration
	// HTTPTimeout bounds each HTTP exchange. Defaults to 30s.
	HTTPTimeout time.Duration

	// RateLimitWindow and RateLimitCapacity configure the sliding-window
	// limiter. Defaults: 15s window, 20 requests.
	RateLimitWindow   time.Duration
	RateLimitCapacity int

	// PollInterval and PollTimeout configure batch-job polling.
	// Defaults: 2s interval, 5m timeout per job page.
	PollInterval time.Duration
	PollTimeout  time.Duration

	// ChunkMaxDays caps the calendar span of a single ranged call before
	// the range is split into windows. Defaults to 14.
	ChunkMaxDays int

	// RequestHooks and ResponseHooks observe every HTTP exchange. A request
	// hook returning an error aborts the request; response hook errors are
	// logged and dropped.
	RequestHooks  *HookChain
	ResponseHooks *HookChain

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
