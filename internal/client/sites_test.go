package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitesClient_List(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/site/list", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("offset"), "site endpoint is not paginated")

		writeDetail(w, map[string]interface{}{
			"sites": []map[string]interface{}{
				{"siteID": 1, "code": "0001", "name": "Main Street", "timezone": "America/New_York"},
				{"siteID": 2, "code": "0002", "name": "Riverside"},
			},
		})
	}))
	defer server.Close()

	sites := NewSitesClient(newTestHTTPClient(server.URL))

	items, err := sites.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].SiteID)
	assert.Equal(t, "Riverside", items[1].Name)
}
