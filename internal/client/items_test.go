package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item", r.URL.Path)

		writeListPage(w, "items", []map[string]interface{}{
			{
				"sku":              "WASH-001",
				"name":             "Basic Wash",
				"departmentName":   "Wash",
				"priceAtSite":      "12.50",
				"isPromptForPrice": false,
				"siteLocation":     "0001",
			},
		}, 1, 100, 1)
	}))
	defer server.Close()

	items := NewItemsClient(newTestHTTPClient(server.URL))

	result, err := items.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "WASH-001", result[0].SKU)
	assert.Equal(t, "Basic Wash", result[0].Name)
}
