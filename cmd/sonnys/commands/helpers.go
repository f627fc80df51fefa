package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/spf13/viper"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
	"github.com/washmetrics/sonnys-go/pkg/sonnysclient"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIIDRequired       = errors.New("API ID is required (use --api-id or SONNYS_API_ID)")
	ErrAPIKeyRequired      = errors.New("API key is required (use --api-key or SONNYS_API_KEY)")
	ErrDateRangeRequired   = errors.New("both --start and --end are required")
	ErrTransactionRequired = errors.New("transaction ID is required")
	ErrCustomerRequired    = errors.New("customer ID is required")
)

// createClient builds a client from viper-resolved configuration. The API
// key is prompted for interactively when it is missing but the API ID is
// present, so scripts can pass --api-key while humans keep keys off their
// shell history.
func createClient() (sonnys.Client, error) {
	apiID := viper.GetString("api-id")
	if apiID == "" {
		return nil, ErrAPIIDRequired
	}

	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		fmt.Print("API key: ")

		keyBytes, err := term.ReadPassword(int(syscall.Stdin))

		fmt.Println()

		if err != nil {
			return nil, fmt.Errorf("failed to read API key: %w", err)
		}

		apiKey = string(keyBytes)
	}

	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &sonnys.Config{
		APIID:    apiID,
		APIKey:   apiKey,
		SiteCode: viper.GetString("site-code"),
		BaseURL:  viper.GetString("base-url"),
	}

	client, err := sonnysclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// formatMoney renders a currency amount with two decimal places.
func formatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// formatCount renders an integer counter for table cells.
func formatCount(count int) string {
	return strconv.Itoa(count)
}

// orNotAvailable substitutes the N/A placeholder for empty table cells.
func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
