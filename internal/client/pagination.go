package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/washmetrics/sonnys-go/internal/constants"
	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// Static errors for err113 compliance.
var errMissingField = errors.New("response field missing")

// envelope is the standard response wrapper. Every endpoint nests its
// payload under "data"; list endpoints further nest the items array under a
// per-endpoint key alongside pagination counters.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeEnvelope unwraps the "data" member of a response body.
func decodeEnvelope(path string, body []byte) (json.RawMessage, error) {
	var env envelope

	err := json.Unmarshal(body, &env)
	if err != nil {
		return nil, &sonnys.DecodeError{Path: path, Err: err}
	}

	if env.Data == nil {
		return nil, &sonnys.DecodeError{Path: path, Err: fmt.Errorf("missing data member: %w", errMissingField)}
	}

	return env.Data, nil
}

// fetchSingle GETs a detail endpoint and decodes data into one record.
func fetchSingle[T any](ctx context.Context, httpClient *http.Client, path string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	data, err := decodeEnvelope(path, resp.Body)
	if err != nil {
		return nil, err
	}

	var record T

	err = json.Unmarshal(data, &record)
	if err != nil {
		return nil, &sonnys.DecodeError{Path: path, Err: err}
	}

	return &record, nil
}

// listPage is the decoded shape of one page from a paginated list endpoint.
type listPage struct {
	items json.RawMessage
	total int
}

// decodeListPage extracts the items array (under itemsKey) and the total
// counter from a list response. A missing total means the endpoint is not
// paginated and the page holds everything.
func decodeListPage(path, itemsKey string, body []byte) (*listPage, error) {
	data, err := decodeEnvelope(path, body)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage

	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, &sonnys.DecodeError{Path: path, Err: err}
	}

	items, ok := fields[itemsKey]
	if !ok {
		return nil, &sonnys.DecodeError{Path: path, Err: fmt.Errorf("missing %q items array: %w", itemsKey, errMissingField)}
	}

	page := &listPage{items: items, total: -1}

	if rawTotal, ok := fields["total"]; ok {
		err = json.Unmarshal(rawTotal, &page.total)
		if err != nil {
			return nil, &sonnys.DecodeError{Path: path, Err: err}
		}
	}

	return page, nil
}

// fetchAllPages walks a paginated list endpoint to completion. Offsets start
// at 1 and advance by the page size; the walk stops once the next offset
// passes the reported total, or after one page when no total is reported.
func fetchAllPages[T any](ctx context.Context, httpClient *http.Client, path, itemsKey string, params *sonnys.QueryParams) ([]T, error) {
	var all []T

	offset := constants.FirstPageOffset
	limit := constants.DefaultPageSize

	for {
		query := url.Values{}
		if params != nil {
			query = params.ToValues()
		}

		query.Set("limit", strconv.Itoa(limit))
		query.Set("offset", strconv.Itoa(offset))

		resp, err := httpClient.Get(ctx, path, query)
		if err != nil {
			return nil, err
		}

		page, err := decodeListPage(path, itemsKey, resp.Body)
		if err != nil {
			return nil, err
		}

		var items []T

		err = json.Unmarshal(page.items, &items)
		if err != nil {
			return nil, &sonnys.DecodeError{Path: path, Err: err}
		}

		all = append(all, items...)

		offset += limit
		if page.total < 0 || offset > page.total {
			break
		}
	}

	return all, nil
}

// fetchUnpaginated fetches every record from an endpoint that returns its
// full result set in one response.
func fetchUnpaginated[T any](ctx context.Context, httpClient *http.Client, path, itemsKey string, params *sonnys.QueryParams) ([]T, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	page, err := decodeListPage(path, itemsKey, resp.Body)
	if err != nil {
		return nil, err
	}

	var items []T

	err = json.Unmarshal(page.items, &items)
	if err != nil {
		return nil, &sonnys.DecodeError{Path: path, Err: err}
	}

	return items, nil
}
