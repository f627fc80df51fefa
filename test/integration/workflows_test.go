//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// TestSitesWorkflow verifies that the configured credentials can reach the
// live API at all. Every other workflow builds on this.
func TestSitesWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipWithoutCredentials(t)

	client := config.NewClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sites, err := client.Sites().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sites)

	for _, site := range sites {
		assert.NotEmpty(t, site.Name)
	}
}

// TestCustomerWorkflow lists customers for the test range and round-trips
// one of them through the detail endpoint.
func TestCustomerWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipWithoutCredentials(t)

	client := config.NewClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	params := sonnys.NewQueryParams().WithDateRange(config.StartDate, config.EndDate)

	customers, err := client.Customers().List(ctx, params)
	require.NoError(t, err)

	if len(customers) == 0 {
		t.Skip("No customers in the test range")
	}

	customer, err := client.Customers().Get(ctx, customers[0].CustomerID)
	require.NoError(t, err)
	assert.Equal(t, customers[0].CustomerID, customer.ID)
}

// TestTransactionExportWorkflow runs one real batch export job and checks
// that the stats engine agrees with itself over the same range.
func TestTransactionExportWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipWithoutCredentials(t)

	client := config.NewClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	records, err := client.Transactions().LoadJobRange(ctx, config.StartDate, config.EndDate)
	require.NoError(t, err)

	for _, record := range records {
		assert.NotEmpty(t, record.ID)
	}

	report, err := client.Stats().Report(ctx, config.StartDate, config.EndDate)
	require.NoError(t, err)

	assert.Equal(t, report.Washes.Member+report.Washes.Retail+report.Washes.Free, report.Washes.Total)
	assert.GreaterOrEqual(t, report.Conversion.Rate, 0.0)
}
