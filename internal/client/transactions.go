package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/washmetrics/sonnys-go/internal/constants"
	"github.com/washmetrics/sonnys-go/internal/http"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// Batch job status values reported by the get-job-data endpoint.
const (
	jobStatusWorking = "working"
	jobStatusPass    = "pass"
	jobStatusFail    = "fail"
)

// TransactionsClient implements sonnys.TransactionsClient, including the
// bulk-export batch job workflow.
type TransactionsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
	chunkMaxDays int
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultPollTimeout,
		chunkMaxDays: constants.DefaultChunkMaxDays,
	}
}

// List implements sonnys.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.TransactionListItem, error) {
	return fetchAllPages[sonnys.TransactionListItem](ctx, c.httpClient, "/transaction", "transactions", params)
}

// Get implements sonnys.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, id string) (*sonnys.Transaction, error) {
	return fetchSingle[sonnys.Transaction](ctx, c.httpClient, "/transaction/"+id)
}

// ListByType implements sonnys.TransactionsClient.ListByType.
func (c *TransactionsClient) ListByType(ctx context.Context, itemType string, params *sonnys.QueryParams) ([]sonnys.TransactionListItem, error) {
	return fetchAllPages[sonnys.TransactionListItem](ctx, c.httpClient, "/transaction/type/"+itemType, "transactions", params)
}

// ListV2 implements sonnys.TransactionsClient.ListV2. The server caches v2
// responses for ten minutes per reporting criteria.
func (c *TransactionsClient) ListV2(ctx context.Context, params *sonnys.QueryParams) ([]sonnys.TransactionV2ListItem, error) {
	return fetchAllPages[sonnys.TransactionV2ListItem](ctx, c.httpClient, "/transaction/version-2", "transactions", params)
}

// jobData is the decoded payload of one get-job-data response.
type jobData struct {
	Hash   string          `json:"hash"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
	Total  int             `json:"total"`
}

// jobPage is the outcome of one completed submit/poll cycle.
type jobPage struct {
	items []sonnys.TransactionJobItem
	total int
	limit int
}

// submitJob POSTs the export criteria and returns the server-issued job hash.
func (c *TransactionsClient) submitJob(ctx context.Context, params url.Values) (string, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "/transaction/load-job",
		Query:  params,
	})
	if err != nil {
		return "", fmt.Errorf("submitting batch job: %w", err)
	}

	data, err := decodeEnvelope("/transaction/load-job", resp.Body)
	if err != nil {
		return "", err
	}

	var submission struct {
		Hash string `json:"hash"`
	}

	err = json.Unmarshal(data, &submission)
	if err != nil {
		return "", &sonnys.DecodeError{Path: "/transaction/load-job", Err: err}
	}

	return submission.Hash, nil
}

// pollJob fetches the current state of a batch job by hash.
func (c *TransactionsClient) pollJob(ctx context.Context, hash string) (*jobData, error) {
	const path = "/transaction/get-job-data"

	query := url.Values{}
	query.Set("hash", hash)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("polling batch job: %w", err)
	}

	data, err := decodeEnvelope(path, resp.Body)
	if err != nil {
		return nil, err
	}

	var job jobData

	err = json.Unmarshal(data, &job)
	if err != nil {
		return nil, &sonnys.DecodeError{Path: path, Err: err}
	}

	return &job, nil
}

// runJob drives one page through its full submit/poll cycle. The deadline is
// fixed at entry and checked after each poll, so at least one poll always
// happens even with a zero timeout.
func (c *TransactionsClient) runJob(ctx context.Context, params url.Values) (*jobPage, error) {
	hash, err := c.submitJob(ctx, params)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.pollTimeout)

	for {
		job, err := c.pollJob(ctx, hash)
		if err != nil {
			return nil, err
		}

		switch job.Status {
		case jobStatusPass:
			page := &jobPage{total: job.Total, limit: job.Limit}

			if len(job.Data) > 0 {
				err = json.Unmarshal(job.Data, &page.items)
				if err != nil {
					return nil, &sonnys.DecodeError{Path: "/transaction/get-job-data", Err: err}
				}
			}

			return page, nil
		case jobStatusFail:
			return nil, fmt.Errorf("%w: job %s", sonnys.ErrJobFailed, hash)
		default:
			if time.Now().After(deadline) {
				return nil, &sonnys.JobTimeoutError{Hash: hash, Timeout: c.pollTimeout.Seconds()}
			}
		}

		timer := time.NewTimer(c.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, fmt.Errorf("waiting for batch job: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

// LoadJob implements sonnys.TransactionsClient.LoadJob. Pages beyond the
// first are fetched by submitting additional independent jobs, each with its
// own polling deadline; results concatenate in order.
func (c *TransactionsClient) LoadJob(ctx context.Context, query *sonnys.LoadJobQuery) ([]sonnys.TransactionJobItem, error) {
	var all []sonnys.TransactionJobItem

	offset := constants.FirstPageOffset
	limit := constants.DefaultPageSize

	for {
		params := url.Values{}
		params.Set("startDate", strconv.FormatInt(query.StartDate, 10))
		params.Set("endDate", strconv.FormatInt(query.EndDate, 10))

		if query.Site != "" {
			params.Set("site", query.Site)
		}

		params.Set("limit", strconv.Itoa(limit))
		params.Set("offset", strconv.Itoa(offset))

		page, err := c.runJob(ctx, params)
		if err != nil {
			return nil, err
		}

		all = append(all, page.items...)

		if page.limit > 0 {
			limit = page.limit
		}

		offset += limit
		if offset > page.total {
			break
		}
	}

	return all, nil
}

// LoadJobRange implements sonnys.TransactionsClient.LoadJobRange. The
// calendar range is split into windows no wider than the upstream maximum
// span, and one LoadJob runs per window. End days are covered through
// 23:59:59.
func (c *TransactionsClient) LoadJobRange(ctx context.Context, startDate, endDate string) ([]sonnys.TransactionJobItem, error) {
	chunks, err := sonnys.BuildDateChunks(startDate, endDate, c.chunkMaxDays)
	if err != nil {
		return nil, fmt.Errorf("splitting export range: %w", err)
	}

	var all []sonnys.TransactionJobItem

	for _, chunk := range chunks {
		start, end, err := sonnys.ParseDateRange(chunk.Start, chunk.End)
		if err != nil {
			return nil, fmt.Errorf("resolving export window: %w", err)
		}

		items, err := c.LoadJob(ctx, &sonnys.LoadJobQuery{
			StartDate: start.Unix(),
			EndDate:   end.Add(24*time.Hour - time.Second).Unix(),
		})
		if err != nil {
			return nil, err
		}

		all = append(all, items...)
	}

	return all, nil
}
