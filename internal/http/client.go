// Package http provides the HTTP transport used by all resource clients.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/washmetrics/sonnys-go/internal/constants"
	"github.com/washmetrics/sonnys-go/internal/ratelimit"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// Static errors for err113 compliance.
var (
	ErrMarshalBody = errors.New("failed to marshal request body")
)

// Credentials carries the API credentials sent with every request.
type Credentials struct {
	APIID    string
	APIKey   string
	SiteCode string
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport. It attaches credentials, paces requests
// through the sliding-window rate limiter, retries rate-limited responses,
// and maps error responses to typed errors.
type Client struct {
	baseURL       string
	credentials   Credentials
	httpClient    *retryablehttp.Client
	limiter       *ratelimit.Limiter
	limiterMu     sync.Mutex
	logger        sonnys.Logger
	debug         bool
	userAgent     string
	retryMax      int
	retryBase     time.Duration
	requestHooks  *sonnys.HookChain
	responseHooks *sonnys.HookChain
}

// Option configures the transport.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger sonnys.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry budget and base backoff delay.
func WithRetryConfig(retryMax int, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryBase = baseDelay
	}
}

// WithRateLimit replaces the default rate limiter window.
func WithRateLimit(capacity int, window time.Duration) Option {
	return func(c *Client) {
		c.limiter = ratelimit.New(capacity, window)
	}
}

// WithHTTPTimeout sets the per-request timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHooks installs the request and response hook chains.
func WithHooks(request, response *sonnys.HookChain) Option {
	return func(c *Client) {
		c.requestHooks = request
		c.responseHooks = response
	}
}

// requestState accumulates per-request telemetry across retry attempts.
// It travels through the request context because retryablehttp hooks are
// client-level, not per-call.
type requestState struct {
	attempts      int
	rateLimitWait time.Duration
}

type stateKey struct{}

// NewClient creates a new HTTP transport for the given base URL and credentials.
func NewClient(baseURL string, credentials Credentials, options ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		limiter:     ratelimit.New(constants.DefaultRateLimitCapacity, constants.DefaultRateLimitWindow),
		retryMax:    constants.DefaultRetryMax,
		retryBase:   constants.DefaultRetryBaseDelay,
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	client.httpClient = retryClient

	for _, option := range options {
		option(client)
	}

	retryClient.RetryMax = client.retryMax
	retryClient.CheckRetry = client.checkRetry
	retryClient.Backoff = client.backoff
	retryClient.RequestLogHook = client.requestLogHook
	// Exhausted retries return the last response so the caller maps the
	// final 429 to a typed error instead of a generic "giving up" error.
	retryClient.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		return resp, err
	}

	return client
}

// checkRetry retries only rate-limited responses. Transport failures and
// server errors surface immediately.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return false, err
	}

	return resp != nil && resp.StatusCode == http.StatusTooManyRequests, nil
}

// backoff doubles the base delay on each retry attempt.
func (c *Client) backoff(_, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
	return c.retryBase * (1 << attemptNum)
}

// requestLogHook paces every attempt, including retries, through the rate
// limiter. When the window is full it waits for the returned duration and
// asks again.
func (c *Client) requestLogHook(_ retryablehttp.Logger, req *http.Request, attempt int) {
	state, _ := req.Context().Value(stateKey{}).(*requestState)
	if state != nil {
		state.attempts = attempt
	}

	for {
		c.limiterMu.Lock()
		wait := c.limiter.Acquire()
		c.limiterMu.Unlock()

		if wait <= 0 {
			return
		}

		if state != nil {
			state.rateLimitWait += wait
		}

		if c.debug && c.logger != nil {
			c.logger.Debug("Rate limit reached", map[string]interface{}{
				"wait": wait.String(),
				"path": req.URL.Path,
			})
		}

		timer := time.NewTimer(wait)
		select {
		case <-req.Context().Done():
			timer.Stop()

			return
		case <-timer.C:
		}
	}
}

// Do executes an HTTP request against the API.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMarshalBody, err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	state := &requestState{}
	ctx = context.WithValue(ctx, stateKey{}, state)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq, req)

	requestEvent := &sonnys.RequestEvent{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
	}
	if c.requestHooks != nil {
		if hookErr := c.requestHooks.RunRequestHooks(ctx, requestEvent); hookErr != nil {
			return nil, hookErr
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	started := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		connErr := wrapTransportError(err)
		c.runResponseHooks(ctx, requestEvent, 0, started, state, connErr)

		return nil, connErr
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":  httpResp.StatusCode,
			"url":     fullURL,
			"elapsed": time.Since(started).String(),
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		statusErr := sonnys.NewStatusError(httpResp.StatusCode, respBody)
		c.runResponseHooks(ctx, requestEvent, resp.StatusCode, started, state, statusErr)

		return resp, statusErr
	}

	c.runResponseHooks(ctx, requestEvent, resp.StatusCode, started, state, nil)

	return resp, nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(constants.HeaderAPIID, c.credentials.APIID)
	httpReq.Header.Set(constants.HeaderAPIKey, c.credentials.APIKey)

	if c.credentials.SiteCode != "" {
		httpReq.Header.Set(constants.HeaderSiteCode, c.credentials.SiteCode)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

func (c *Client) runResponseHooks(ctx context.Context, req *sonnys.RequestEvent, statusCode int, started time.Time, state *requestState, err error) {
	if c.responseHooks == nil {
		return
	}

	event := &sonnys.ResponseEvent{
		StatusCode:    statusCode,
		Elapsed:       time.Since(started),
		RateLimitWait: state.rateLimitWait,
		Retries:       state.attempts,
		Error:         err,
	}

	if hookErr := c.responseHooks.RunResponseHooks(ctx, req, event); hookErr != nil && c.logger != nil {
		c.logger.Warn("response hook failed", map[string]interface{}{"error": hookErr.Error()})
	}
}

// wrapTransportError converts low-level transport failures to ConnectionError,
// unwrapping the url.Error that retryablehttp returns.
func wrapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &sonnys.ConnectionError{
			Timeout: urlErr.Timeout(),
			Err:     urlErr.Err,
		}
	}

	return &sonnys.ConnectionError{
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
