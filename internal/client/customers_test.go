package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/washmetrics/sonnys-go/pkg/sonnys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "John", r.URL.Query().Get("first_name"))

		writeListPage(w, "customers", []map[string]interface{}{
			{
				"customerId":  "1:234",
				"firstName":   "John",
				"lastName":    "Driver",
				"phoneNumber": "555-0100",
				"isActive":    true,
				"createdDate": "2025-03-15T10:00:00Z",
			},
		}, 1, 100, 1)
	}))
	defer server.Close()

	customers := NewCustomersClient(newTestHTTPClient(server.URL))

	items, err := customers.List(context.Background(), sonnys.NewQueryParams().WithFilter("first_name", "John"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1:234", items[0].CustomerID)
	assert.Equal(t, "John", items[0].FirstName)
	assert.True(t, items[0].IsActive)
}

func TestCustomersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/1:234", r.URL.Path)

		writeDetail(w, map[string]interface{}{
			"id":        "1:234",
			"number":    "234",
			"firstName": "John",
			"lastName":  "Driver",
			"address": map[string]interface{}{
				"city":  "Tampa",
				"state": "FL",
			},
			"phone":      "555-0100",
			"isActive":   true,
			"allowSms":   true,
			"modifyDate": "2026-01-10T08:30:00Z",
		})
	}))
	defer server.Close()

	customers := NewCustomersClient(newTestHTTPClient(server.URL))

	customer, err := customers.Get(context.Background(), "1:234")
	require.NoError(t, err)
	assert.Equal(t, "1:234", customer.ID)
	assert.Equal(t, "Tampa", customer.Address.City)
	assert.True(t, customer.AllowSMS)
}

func TestCustomersClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"type":    "EntityNotFoundError",
			"message": "Customer not found",
		})
	}))
	defer server.Close()

	customers := NewCustomersClient(newTestHTTPClient(server.URL))

	_, err := customers.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, sonnys.IsNotFound(err))
}
