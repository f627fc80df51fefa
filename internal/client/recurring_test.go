package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecurringClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recurring/account/r-1/detail", r.URL.Path)

		writeDetail(w, map[string]interface{}{
			"id":                         "r-1",
			"isOnTrial":                  false,
			"billingSiteCode":            "0001",
			"creationSiteCode":           "0001",
			"nextBillDate":               "2026-07-01",
			"currentRecurringStatusName": "Active",
			"planName":                   "Unlimited Shine",
			"customer":                   map[string]interface{}{"id": "1:234", "firstName": "John"},
			"recurringStatuses": []map[string]interface{}{
				{"status": "Active", "date": "2026-01-01"},
			},
			"recurringBillings": []map[string]interface{}{
				{"amountCharged": 29.99, "date": "2026-06-01", "lastFourCC": "1234"},
			},
			"tags":     []interface{}{},
			"vehicles": []interface{}{},
		})
	}))
	defer server.Close()

	recurring := NewRecurringClient(newTestHTTPClient(server.URL))

	account, err := recurring.Get(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Unlimited Shine", account.PlanName)
	require.Len(t, account.RecurringBillings, 1)
	assert.Equal(t, "1234", account.RecurringBillings[0].LastFourCC)
}

func TestRecurringClient_ListStatusChanges_SnakeCase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recurring/account/status-list", r.URL.Path)

		writeListPage(w, "accounts", []map[string]interface{}{
			{
				"washbook_account_id": "w-1",
				"recurring_id":        "r-1",
				"old_status":          "Pending",
				"new_status":          "Active",
				"status_date":         "2026-06-02",
				"employee_name":       "Pat Greeter",
				"site_code":           "0001",
			},
		}, 1, 100, 1)
	}))
	defer server.Close()

	recurring := NewRecurringClient(newTestHTTPClient(server.URL))

	changes, err := recurring.ListStatusChanges(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "r-1", changes[0].RecurringID)
	assert.Equal(t, "Active", changes[0].NewStatus)
	assert.Equal(t, "Pat Greeter", changes[0].EmployeeName)
}

func TestRecurringClient_ListModifications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recurring/account/modifications", r.URL.Path)

		writeListPage(w, "accounts", []map[string]interface{}{
			{
				"id":                         "r-1",
				"billingSiteCode":            "0001",
				"creationSiteCode":           "0001",
				"nextBillDate":               "2026-07-01",
				"currentRecurringStatusName": "Active",
				"planName":                   "Unlimited Shine",
				"customer":                   map[string]interface{}{},
				"recurringStatuses":          []interface{}{},
				"recurringBillings":          []interface{}{},
				"tags":                       []interface{}{},
				"vehicles":                   []interface{}{},
				"modifications": []map[string]interface{}{
					{"name": "Plan change", "date": "2026-06-03", "comment": "upgraded"},
				},
			},
		}, 1, 100, 1)
	}))
	defer server.Close()

	recurring := NewRecurringClient(newTestHTTPClient(server.URL))

	mods, err := recurring.ListModifications(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, mods, 1)
	require.Len(t, mods[0].Modifications, 1)
	assert.Equal(t, "Plan change", mods[0].Modifications[0].Name)
}
