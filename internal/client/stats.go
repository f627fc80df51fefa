package client

import (
	"context"
	"fmt"
	"time"

	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// StatsClient implements sonnys.StatsClient. It computes KPIs by fetching
// raw records in bulk and classifying them locally; no per-record detail
// calls are made.
type StatsClient struct {
	transactions sonnys.TransactionsClient
	recurring    sonnys.RecurringClient
}

// NewStatsClient creates a new stats client over the given resource clients.
func NewStatsClient(transactions sonnys.TransactionsClient, recurring sonnys.RecurringClient) *StatsClient {
	return &StatsClient{
		transactions: transactions,
		recurring:    recurring,
	}
}

// statsSources holds the bulk data every KPI is derived from: the enriched
// transaction listing plus the wash-type and recurring-type listings.
type statsSources struct {
	enriched []sonnys.TransactionV2ListItem
	washIDs  map[string]struct{}
	recurIDs map[string]struct{}
}

// resolveRange validates a date range and converts it to Unix-timestamp
// query parameters.
func resolveRange(start, end sonnys.DateInput) (*sonnys.QueryParams, time.Time, time.Time, error) {
	startTime, endTime, err := sonnys.ParseDateRange(start, end)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	params := sonnys.NewQueryParams().WithUnixRange(startTime.Unix(), endTime.Unix())

	return params, startTime, endTime, nil
}

// fetchSources performs the shared bulk fetch for one period.
func (c *StatsClient) fetchSources(ctx context.Context, params *sonnys.QueryParams) (*statsSources, error) {
	enriched, err := c.transactions.ListV2(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetching enriched transactions: %w", err)
	}

	washes, err := c.transactions.ListByType(ctx, "wash", params)
	if err != nil {
		return nil, fmt.Errorf("fetching wash transactions: %w", err)
	}

	recurring, err := c.transactions.ListByType(ctx, "recurring", params)
	if err != nil {
		return nil, fmt.Errorf("fetching recurring transactions: %w", err)
	}

	sources := &statsSources{
		enriched: enriched,
		washIDs:  make(map[string]struct{}, len(washes)),
		recurIDs: make(map[string]struct{}, len(recurring)),
	}

	for _, item := range washes {
		sources.washIDs[item.TransID] = struct{}{}
	}

	for _, item := range recurring {
		sources.recurIDs[item.TransID] = struct{}{}
	}

	return sources, nil
}

// computeSales buckets revenue by the enriched transaction flags.
func computeSales(sources *statsSources) sonnys.SalesResult {
	var result sonnys.SalesResult

	for _, txn := range sources.enriched {
		result.Total += txn.Total
		result.Count++

		switch {
		case txn.IsRecurringPlanSale:
			result.RecurringPlanSales += txn.Total
			result.RecurringPlanSalesCount++
		case txn.IsRecurringPlanRedemption:
			result.RecurringRedemptions += txn.Total
			result.RecurringRedemptionsCount++
		default:
			result.Retail += txn.Total
			result.RetailCount++
		}
	}

	return result
}

// computeWashes classifies each enriched transaction by strict priority:
// redemptions are member washes; plan sales count toward plan revenue, not
// wash volume; wash-type transactions are washes even when they co-occur in
// the recurring-type listing (a recharge tagged as wash-type is a wash by
// business rule, surfaced in the Recharges counter); negative totals are
// refunds and excluded; anything left is
// counted as a retail wash for conservatism. Zero-total non-member washes
// are additionally tagged free.
func computeWashes(sources *statsSources) sonnys.WashResult {
	var result sonnys.WashResult

	for _, txn := range sources.enriched {
		switch {
		case txn.IsRecurringPlanRedemption:
			result.Member++
		case txn.IsRecurringPlanSale:
			// Plan-sale revenue, not wash volume.
			continue
		case isWashType(sources, txn.TransID):
			if _, recharge := sources.recurIDs[txn.TransID]; recharge {
				// Monthly recharge tagged as wash-type; still a wash.
				result.Recharges++
			}

			if txn.Total == 0 {
				result.Free++
			} else {
				result.Retail++
			}
		case txn.Total < 0:
			// Refund, excluded entirely.
			continue
		default:
			if txn.Total == 0 {
				result.Free++
			} else {
				result.Retail++
			}
		}
	}

	result.Total = result.Member + result.Retail + result.Free
	result.Eligible = result.Total - result.Member - result.Free

	return result
}

// isWashType reports whether a transaction appears in the wash-type listing.
func isWashType(sources *statsSources, transID string) bool {
	_, ok := sources.washIDs[transID]

	return ok
}

// computeConversion computes plan sales divided by eligible washes, with 0.0
// on a zero denominator.
func computeConversion(sources *statsSources, washes sonnys.WashResult) sonnys.ConversionResult {
	newMemberships := 0

	for _, txn := range sources.enriched {
		if txn.IsRecurringPlanSale {
			newMemberships++
		}
	}

	result := sonnys.ConversionResult{
		NewMemberships: newMemberships,
		EligibleWashes: washes.Eligible,
	}

	if washes.Eligible > 0 {
		result.Rate = float64(newMemberships) / float64(washes.Eligible)
	}

	return result
}

// TotalSales implements sonnys.StatsClient.TotalSales.
func (c *StatsClient) TotalSales(ctx context.Context, start, end sonnys.DateInput) (*sonnys.SalesResult, error) {
	params, _, _, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	sources, err := c.fetchSources(ctx, params)
	if err != nil {
		return nil, err
	}

	result := computeSales(sources)

	return &result, nil
}

// TotalWashes implements sonnys.StatsClient.TotalWashes.
func (c *StatsClient) TotalWashes(ctx context.Context, start, end sonnys.DateInput) (*sonnys.WashResult, error) {
	params, _, _, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	sources, err := c.fetchSources(ctx, params)
	if err != nil {
		return nil, err
	}

	result := computeWashes(sources)

	return &result, nil
}

// ConversionRate implements sonnys.StatsClient.ConversionRate.
func (c *StatsClient) ConversionRate(ctx context.Context, start, end sonnys.DateInput) (*sonnys.ConversionResult, error) {
	params, _, _, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	sources, err := c.fetchSources(ctx, params)
	if err != nil {
		return nil, err
	}

	washes := computeWashes(sources)
	result := computeConversion(sources, washes)

	return &result, nil
}

// MembershipChanges implements sonnys.StatsClient.MembershipChanges. It is
// computed from the status-change event feed rather than the transaction
// sources.
func (c *StatsClient) MembershipChanges(ctx context.Context, start, end sonnys.DateInput) (*sonnys.MembershipChangesResult, error) {
	params, _, _, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	changes, err := c.recurring.ListStatusChanges(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetching status changes: %w", err)
	}

	result := &sonnys.MembershipChangesResult{
		ByNewStatus: make(map[string]int),
	}

	for _, change := range changes {
		result.Total++
		result.ByNewStatus[change.NewStatus]++

		switch change.NewStatus {
		case "Active":
			result.Activations++
		case "Cancelled", "Canceled":
			result.Cancellations++
		}
	}

	return result, nil
}

// Report implements sonnys.StatsClient.Report. Every KPI is computed from
// one shared set of bulk fetches instead of re-fetching per method.
func (c *StatsClient) Report(ctx context.Context, start, end sonnys.DateInput) (*sonnys.StatsReport, error) {
	params, startTime, endTime, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	sources, err := c.fetchSources(ctx, params)
	if err != nil {
		return nil, err
	}

	washes := computeWashes(sources)

	return &sonnys.StatsReport{
		Start:      startTime,
		End:        endTime,
		Sales:      computeSales(sources),
		Washes:     washes,
		Conversion: computeConversion(sources, washes),
	}, nil
}
