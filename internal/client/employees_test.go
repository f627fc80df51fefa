package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employee", r.URL.Path)

		writeListPage(w, "employees", []map[string]interface{}{
			{"employeeId": 42, "firstName": "Pat", "lastName": "Greeter"},
		}, 1, 100, 1)
	}))
	defer server.Close()

	employees := NewEmployeesClient(newTestHTTPClient(server.URL), 14)

	items, err := employees.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 42, items[0].EmployeeID)
}

func TestEmployeesClient_ClockEntries_FlattensWeeks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employee/42/clock-entries", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-01-07", r.URL.Query().Get("endDate"))

		writeDetail(w, map[string]interface{}{
			"weeks": []map[string]interface{}{
				{
					"clockEntries": []map[string]interface{}{
						{"clockIn": "2026-01-02T08:00:00Z", "clockOut": "2026-01-02T16:00:00Z", "regularHours": 8.0, "siteCode": "0001"},
						{"clockIn": "2026-01-03T08:00:00Z", "clockOut": "2026-01-03T12:00:00Z", "regularHours": 4.0, "siteCode": "0001"},
					},
				},
				{
					"clockEntries": []map[string]interface{}{
						{"clockIn": "2026-01-06T08:00:00Z", "clockOut": "2026-01-06T16:00:00Z", "regularHours": 8.0, "siteCode": "0002"},
					},
				},
			},
		})
	}))
	defer server.Close()

	employees := NewEmployeesClient(newTestHTTPClient(server.URL), 14)

	entries, err := employees.ClockEntries(context.Background(), "42", "2026-01-01", "2026-01-07")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "0001", entries[0].SiteCode)
	assert.Equal(t, "0002", entries[2].SiteCode)
}

func TestEmployeesClient_ClockEntries_ChunksWideRanges(t *testing.T) {
	var ranges [][2]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ranges = append(ranges, [2]string{
			r.URL.Query().Get("startDate"),
			r.URL.Query().Get("endDate"),
		})

		writeDetail(w, map[string]interface{}{
			"weeks": []map[string]interface{}{},
		})
	}))
	defer server.Close()

	employees := NewEmployeesClient(newTestHTTPClient(server.URL), 14)

	_, err := employees.ClockEntries(context.Background(), "42", "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{"2026-01-01", "2026-01-14"},
		{"2026-01-15", "2026-01-28"},
		{"2026-01-29", "2026-01-31"},
	}, ranges)
}

func TestEmployeesClient_ClockEntries_InvalidRange(t *testing.T) {
	employees := NewEmployeesClient(newTestHTTPClient("http://unused"), 14)

	_, err := employees.ClockEntries(context.Background(), "42", "2026-02-01", "2026-01-01")
	require.Error(t, err)
}
