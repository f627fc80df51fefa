// Package sonnysclient provides the main entry point for creating Sonny's
// CarWash Controls Data API clients.
package sonnysclient

import (
	"fmt"
	"strings"

	"github.com/washmetrics/sonnys-go/internal/client"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// New creates a new API client from config. APIID and APIKey are required;
// everything else falls back to documented defaults.
func New(config *sonnys.Config) (sonnys.Client, error) {
	if config == nil {
		return nil, sonnys.ErrConfigRequired
	}

	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}
