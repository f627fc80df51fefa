package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWashbooksClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/washbook/account/list", r.URL.Path)

		writeListPage(w, "accounts", []map[string]interface{}{
			{
				"id":            "w-1",
				"name":          "Fleet Plan",
				"balance":       "120.00",
				"signUpDate":    "2025-01-01",
				"billingSiteId": 1,
				"status":        "Active",
			},
		}, 1, 100, 1)
	}))
	defer server.Close()

	washbooks := NewWashbooksClient(newTestHTTPClient(server.URL))

	items, err := washbooks.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "w-1", items[0].ID)
	assert.Equal(t, "Active", items[0].Status)
}

func TestWashbooksClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/washbook/account/w-1/detail", r.URL.Path)

		writeDetail(w, map[string]interface{}{
			"id":     "w-1",
			"name":   "Fleet Plan",
			"status": "Active",
			"customer": map[string]interface{}{
				"id": "1:234", "firstName": "John", "lastName": "Driver",
			},
			"recurringInfo": map[string]interface{}{
				"currentBillableAmount": 29.99,
				"nextBillDate":          "2026-07-01",
				"isOnTrial":             false,
				"remainingTrialPeriods": 0,
			},
			"tags": []map[string]interface{}{
				{"id": "tag-1", "number": "RFID-9", "enabled": true},
			},
			"vehicles": []map[string]interface{}{
				{"id": "v-1", "plate": "ABC123"},
			},
		})
	}))
	defer server.Close()

	washbooks := NewWashbooksClient(newTestHTTPClient(server.URL))

	account, err := washbooks.Get(context.Background(), "w-1")
	require.NoError(t, err)
	assert.Equal(t, "Fleet Plan", account.Name)
	assert.InDelta(t, 29.99, account.RecurringInfo.CurrentBillableAmount, 1e-9)
	require.Len(t, account.Tags, 1)
	assert.True(t, account.Tags[0].Enabled)
	require.Len(t, account.Vehicles, 1)
	assert.Equal(t, "ABC123", account.Vehicles[0].Plate)
}
