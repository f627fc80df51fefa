package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/washmetrics/sonnys-go/pkg/sonnys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllPages_WalksEveryPage(t *testing.T) {
	var offsets []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)

		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		switch offset {
		case "1":
			writeListPage(w, "customers", []map[string]interface{}{
				{"customerId": "1:1", "firstName": "Ann", "lastName": "Lee", "isActive": true, "createdDate": "2026-01-01"},
			}, 1, 100, 150)
		case "101":
			writeListPage(w, "customers", []map[string]interface{}{
				{"customerId": "1:2", "firstName": "Bob", "lastName": "Ray", "isActive": true, "createdDate": "2026-01-02"},
			}, 101, 100, 150)
		default:
			t.Errorf("unexpected offset %q", offset)
		}
	}))
	defer server.Close()

	items, err := fetchAllPages[sonnys.CustomerListItem](context.Background(), newTestHTTPClient(server.URL), "/customer", "customers", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "101"}, offsets)
	require.Len(t, items, 2)
	assert.Equal(t, "1:1", items[0].CustomerID)
	assert.Equal(t, "1:2", items[1].CustomerID)
}

func TestFetchAllPages_StopsAfterOnePageWithoutTotal(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		writeDetail(w, map[string]interface{}{
			"customers": []map[string]interface{}{
				{"customerId": "1:1", "firstName": "Ann", "lastName": "Lee", "isActive": true, "createdDate": "2026-01-01"},
			},
		})
	}))
	defer server.Close()

	items, err := fetchAllPages[sonnys.CustomerListItem](context.Background(), newTestHTTPClient(server.URL), "/customer", "customers", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Len(t, items, 1)
}

func TestFetchAllPages_ForwardsQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1700000000", r.URL.Query().Get("startDate"))
		assert.Equal(t, "1700086400", r.URL.Query().Get("endDate"))
		assert.Equal(t, "0001", r.URL.Query().Get("site"))

		writeListPage(w, "transactions", []map[string]interface{}{}, 1, 100, 0)
	}))
	defer server.Close()

	params := sonnys.NewQueryParams().
		WithUnixRange(1700000000, 1700086400).
		WithSite("0001")

	items, err := fetchAllPages[sonnys.TransactionListItem](context.Background(), newTestHTTPClient(server.URL), "/transaction", "transactions", params)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchAllPages_MissingItemsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, map[string]interface{}{"total": 0})
	}))
	defer server.Close()

	_, err := fetchAllPages[sonnys.CustomerListItem](context.Background(), newTestHTTPClient(server.URL), "/customer", "customers", nil)
	require.Error(t, err)

	decodeErr := &sonnys.DecodeError{}
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "/customer", decodeErr.Path)
}

func TestFetchSingle_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := fetchSingle[sonnys.Customer](context.Background(), newTestHTTPClient(server.URL), "/customer/1:1")
	require.Error(t, err)

	decodeErr := &sonnys.DecodeError{}
	assert.ErrorAs(t, err, &decodeErr)
}
