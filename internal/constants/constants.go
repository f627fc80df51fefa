// Package constants holds shared defaults for the SDK.
package constants

import "time"

// DefaultBaseURL is the production endpoint of the Sonny's Controls Data API.
const DefaultBaseURL = "https://trigonapi.sonnyscontrols.com/v1"

// Credential header names.
const (
	HeaderAPIID    = "X-Sonnys-API-ID"
	HeaderAPIKey   = "X-Sonnys-API-Key"
	HeaderSiteCode = "X-Sonnys-Site-Code"
)

// HTTP and retry defaults.
const (
	// DefaultHTTPTimeout bounds every HTTP exchange; requests never wait
	// forever.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryMax is the maximum number of 429 retries.
	DefaultRetryMax = 3

	// DefaultRetryBaseDelay is the first 429 backoff delay; each retry
	// doubles the previous one.
	DefaultRetryBaseDelay = 1 * time.Second
)

// Rate limiter defaults, matching the upstream per-credential quota.
const (
	// DefaultRateLimitWindow is the length of the sliding window.
	DefaultRateLimitWindow = 15 * time.Second

	// DefaultRateLimitCapacity is the number of requests allowed per window.
	DefaultRateLimitCapacity = 20
)

// Batch job polling defaults.
const (
	// DefaultPollInterval is the delay between job status polls.
	DefaultPollInterval = 2 * time.Second

	// DefaultPollTimeout is the client-imposed deadline per job page.
	DefaultPollTimeout = 5 * time.Minute
)

// Pagination and chunking defaults.
const (
	// DefaultPageSize is the limit sent on paginated list requests.
	DefaultPageSize = 100

	// FirstPageOffset is where offset pagination starts; the API counts
	// from 1, not 0.
	FirstPageOffset = 1

	// DefaultChunkMaxDays is the widest calendar span a single ranged call
	// may cover before the range is split into windows.
	DefaultChunkMaxDays = 14
)
