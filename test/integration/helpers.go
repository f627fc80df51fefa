//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"
	"time"

	"github.com/washmetrics/sonnys-go/pkg/sonnys"
	"github.com/washmetrics/sonnys-go/pkg/sonnysclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIID     string
	APIKey    string
	SiteCode  string
	BaseURL   string
	StartDate string
	EndDate   string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	config := &TestConfig{
		APIID:     os.Getenv("SONNYS_API_ID"),
		APIKey:    os.Getenv("SONNYS_API_KEY"),
		SiteCode:  os.Getenv("SONNYS_SITE_CODE"),
		BaseURL:   os.Getenv("SONNYS_BASE_URL"),
		StartDate: os.Getenv("SONNYS_TEST_START"),
		EndDate:   os.Getenv("SONNYS_TEST_END"),
		Verbose:   os.Getenv("SONNYS_VERBOSE") == "true",
	}

	// Default to the last complete week when no range is pinned
	if config.StartDate == "" || config.EndDate == "" {
		now := time.Now().UTC()
		config.StartDate = now.AddDate(0, 0, -8).Format("2006-01-02")
		config.EndDate = now.AddDate(0, 0, -1).Format("2006-01-02")
	}

	return config
}

// SkipWithoutCredentials skips the test when no live credentials are set
func (c *TestConfig) SkipWithoutCredentials(t *testing.T) {
	t.Helper()

	if c.APIID == "" || c.APIKey == "" {
		t.Skip("Skipping integration test: SONNYS_API_ID and SONNYS_API_KEY not set")
	}
}

// NewClient builds a live API client from the test configuration
func (c *TestConfig) NewClient(t *testing.T) sonnys.Client {
	t.Helper()

	client, err := sonnysclient.New(&sonnys.Config{
		APIID:    c.APIID,
		APIKey:   c.APIKey,
		SiteCode: c.SiteCode,
		BaseURL:  c.BaseURL,
		Debug:    c.Verbose,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}
