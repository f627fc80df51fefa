package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// EmployeesClient implements sonnys.EmployeesClient.
type EmployeesClient struct {
	httpClient   *http.Client
	chunkMaxDays int
}

// NewEmployeesClient creates a new employees client.
func NewEmployeesClient(httpClient *http.Client, chunkMaxDays int) *EmployeesClient {
	return &EmployeesClient{
		httpClient:   httpClient,
		chunkMaxDays: chunkMaxDays,
	}
}

// List implements sonnys.EmployeesClient.List.
func (c *EmployeesClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.EmployeeListItem, error) {
	return fetchAllPages[sonnys.EmployeeListItem](ctx, c.httpClient, "/employee", "employees", params)
}

// Get implements sonnys.EmployeesClient.Get.
func (c *EmployeesClient) Get(ctx context.Context, id string) (*sonnys.Employee, error) {
	return fetchSingle[sonnys.Employee](ctx, c.httpClient, "/employee/"+id)
}

// clockEntriesData is the nested weeks structure the clock-entries endpoint
// returns. Entries are grouped by payroll week and flattened for callers.
type clockEntriesData struct {
	Weeks []struct {
		ClockEntries []sonnys.ClockEntry `json:"clockEntries"`
	} `json:"weeks"`
}

// ClockEntries implements sonnys.EmployeesClient.ClockEntries. The endpoint
// caps the date span of one call, so the range is split into windows and
// fetched window by window.
func (c *EmployeesClient) ClockEntries(ctx context.Context, employeeID string, startDate, endDate string) ([]sonnys.ClockEntry, error) {
	chunks, err := sonnys.BuildDateChunks(startDate, endDate, c.chunkMaxDays)
	if err != nil {
		return nil, fmt.Errorf("splitting clock entry range: %w", err)
	}

	path := "/employee/" + employeeID + "/clock-entries"

	var entries []sonnys.ClockEntry

	for _, chunk := range chunks {
		query := sonnys.NewQueryParams().WithDateRange(chunk.Start, chunk.End).ToValues()

		resp, err := c.httpClient.Get(ctx, path, query)
		if err != nil {
			return nil, err
		}

		data, err := decodeEnvelope(path, resp.Body)
		if err != nil {
			return nil, err
		}

		var payload clockEntriesData

		err = json.Unmarshal(data, &payload)
		if err != nil {
			return nil, &sonnys.DecodeError{Path: path, Err: err}
		}

		for _, week := range payload.Weeks {
			entries = append(entries, week.ClockEntries...)
		}
	}

	return entries, nil
}
