package sonnys_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/washmetrics/sonnys-go/pkg/sonnys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookChain_RunsInOrder(t *testing.T) {
	chain := sonnys.NewHookChain()

	var order []string

	chain.AddRequestHook(func(ctx context.Context, event *sonnys.RequestEvent) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestHook(func(ctx context.Context, event *sonnys.RequestEvent) error {
		order = append(order, "second")

		return nil
	})

	err := chain.RunRequestHooks(context.Background(), &sonnys.RequestEvent{Method: "GET", Path: "/site"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHookChain_StopsOnError(t *testing.T) {
	chain := sonnys.NewHookChain()
	hookErr := errors.New("reject")
	called := false

	chain.AddRequestHook(func(ctx context.Context, event *sonnys.RequestEvent) error {
		return hookErr
	})
	chain.AddRequestHook(func(ctx context.Context, event *sonnys.RequestEvent) error {
		called = true

		return nil
	})

	err := chain.RunRequestHooks(context.Background(), &sonnys.RequestEvent{})
	require.ErrorIs(t, err, hookErr)
	assert.False(t, called)
}

func TestMetricsCollector(t *testing.T) {
	collector := sonnys.NewMetricsCollector()
	hook := collector.Hook()

	req := &sonnys.RequestEvent{Method: "GET", Path: "/transaction"}

	err := hook(context.Background(), req, &sonnys.ResponseEvent{
		StatusCode: 200,
		Elapsed:    100 * time.Millisecond,
	})
	require.NoError(t, err)

	err = hook(context.Background(), req, &sonnys.ResponseEvent{
		StatusCode: 429,
		Elapsed:    300 * time.Millisecond,
		Retries:    3,
		Error:      sonnys.NewStatusError(429, nil),
	})
	require.NoError(t, err)

	metrics := collector.Metrics("GET /transaction")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Equal(t, int64(3), metrics.TotalRetries)
	assert.Equal(t, 200*time.Millisecond, metrics.AverageLatency)

	assert.Nil(t, collector.Metrics("GET /unknown"))
}

func TestMetricsCollector_OnChange(t *testing.T) {
	collector := sonnys.NewMetricsCollector()

	var changed []string

	collector.SetOnChange(func(endpoint string, metrics *sonnys.EndpointMetrics) {
		changed = append(changed, endpoint)
	})

	hook := collector.Hook()
	err := hook(context.Background(), &sonnys.RequestEvent{Method: "GET", Path: "/site"}, &sonnys.ResponseEvent{StatusCode: 200})
	require.NoError(t, err)

	assert.Equal(t, []string{"GET /site"}, changed)
}
