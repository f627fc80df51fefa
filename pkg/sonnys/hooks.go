package sonnys

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RequestEvent describes a request about to be issued.
type RequestEvent struct {
	Method   string
	Path     string
	Headers  http.Header
	Metadata map[string]interface{}
}

// ResponseEvent describes a completed exchange, including rate-limit waits
// and 429 retries observed along the way.
type ResponseEvent struct {
	StatusCode    int
	Elapsed       time.Duration
	RateLimitWait time.Duration
	Retries       int
	Error         error
}

// RequestHook is called before a request is sent.
type RequestHook func(ctx context.Context, event *RequestEvent) error

// ResponseHook is called after a response is received or the exchange fails.
type ResponseHook func(ctx context.Context, req *RequestEvent, resp *ResponseEvent) error

// HookChain manages the observability hooks the HTTP pipeline emits through.
// The hosting application registers hooks to feed its own logging or metrics
// infrastructure; no ambient global state is involved.
type HookChain struct {
	requestHooks  []RequestHook
	responseHooks []ResponseHook
}

// NewHookChain creates a new empty hook chain.
func NewHookChain() *HookChain {
	return &HookChain{}
}

// AddRequestHook appends a request hook.
func (c *HookChain) AddRequestHook(hook RequestHook) {
	c.requestHooks = append(c.requestHooks, hook)
}

// AddResponseHook appends a response hook.
func (c *HookChain) AddResponseHook(hook ResponseHook) {
	c.responseHooks = append(c.responseHooks, hook)
}

// RunRequestHooks runs all request hooks in registration order.
func (c *HookChain) RunRequestHooks(ctx context.Context, event *RequestEvent) error {
	for _, hook := range c.requestHooks {
		err := hook(ctx, event)
		if err != nil {
			return fmt.Errorf("request hook failed: %w", err)
		}
	}

	return nil
}

// RunResponseHooks runs all response hooks in registration order.
func (c *HookChain) RunResponseHooks(ctx context.Context, req *RequestEvent, resp *ResponseEvent) error {
	for _, hook := range c.responseHooks {
		err := hook(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response hook failed: %w", err)
		}
	}

	return nil
}

// LoggingRequestHook logs issued requests through a Logger.
func LoggingRequestHook(logger Logger) RequestHook {
	return func(ctx context.Context, event *RequestEvent) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": event.Method,
			"path":   event.Path,
		})

		return nil
	}
}

// LoggingResponseHook logs completed exchanges through a Logger.
func LoggingResponseHook(logger Logger) ResponseHook {
	return func(ctx context.Context, req *RequestEvent, resp *ResponseEvent) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"elapsed_ms":  resp.Elapsed.Milliseconds(),
		}

		if resp.RateLimitWait > 0 {
			fields["rate_limit_wait_ms"] = resp.RateLimitWait.Milliseconds()
		}

		if resp.Retries > 0 {
			fields["retries"] = resp.Retries
		}

		if resp.Error != nil {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// EndpointMetrics aggregates call metrics for one endpoint.
type EndpointMetrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalRetries    int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects per-endpoint API metrics via a ResponseHook.
type MetricsCollector struct {
	metrics  map[string]*EndpointMetrics
	onChange func(endpoint string, metrics *EndpointMetrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*EndpointMetrics),
	}
}

// SetOnChange sets a callback invoked whenever metrics change.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics *EndpointMetrics)) {
	m.onChange = fn
}

// Metrics returns metrics for an endpoint, or nil if none recorded.
func (m *MetricsCollector) Metrics(endpoint string) *EndpointMetrics {
	return m.metrics[endpoint]
}

// Hook returns the ResponseHook that feeds this collector.
func (m *MetricsCollector) Hook() ResponseHook {
	return func(ctx context.Context, req *RequestEvent, resp *ResponseEvent) error {
		endpoint := req.Method + " " + req.Path

		metrics, ok := m.metrics[endpoint]
		if !ok {
			metrics = &EndpointMetrics{}
			m.metrics[endpoint] = metrics
		}

		metrics.TotalRequests++
		metrics.TotalRetries += int64(resp.Retries)
		metrics.LastRequestTime = time.Now()
		metrics.TotalLatency += resp.Elapsed
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)

		if resp.Error != nil || resp.StatusCode >= 400 {
			metrics.TotalErrors++
		}

		if m.onChange != nil {
			m.onChange(endpoint, metrics)
		}

		return nil
	}
}
