package sonnys

import "time"

// SalesResult is the revenue breakdown for one period. Revenue is split into
// three buckets from the enriched transaction flags: recurring plan sales,
// recurring redemptions, and retail. Each bucket carries a revenue total and
// a transaction count.
type SalesResult struct {
	Total                     float64 `json:"total"                     yaml:"total"`
	Count                     int     `json:"count"                     yaml:"count"`
	RecurringPlanSales        float64 `json:"recurringPlanSales"        yaml:"recurringPlanSales"`
	RecurringPlanSalesCount   int     `json:"recurringPlanSalesCount"   yaml:"recurringPlanSalesCount"`
	RecurringRedemptions      float64 `json:"recurringRedemptions"      yaml:"recurringRedemptions"`
	RecurringRedemptionsCount int     `json:"recurringRedemptionsCount" yaml:"recurringRedemptionsCount"`
	Retail                    float64 `json:"retail"                    yaml:"retail"`
	RetailCount               int     `json:"retailCount"               yaml:"retailCount"`
}

// WashResult is the wash-volume breakdown for one period.
//
// Member washes are recurring plan redemptions. Retail washes are everything
// else that classified as a wash, including monthly recharges that co-occur
// with wash-type tagging and unknown non-negative transactions. Free counts
// washes with a zero total; refunds (negative totals outside the wash-type
// listing) are excluded entirely. Eligible = Total - Member - Free, the
// denominator for the conversion rate.
type WashResult struct {
	Total    int `json:"total"    yaml:"total"`
	Member   int `json:"member"   yaml:"member"`
	Retail   int `json:"retail"   yaml:"retail"`
	Free     int `json:"free"     yaml:"free"`
	Eligible int `json:"eligible" yaml:"eligible"`

	// Recharges counts wash-classified transactions that also appear in the
	// recurring-type listing. They are already included in the buckets
	// above; the counter surfaces how many washes were monthly recharges.
	Recharges int `json:"recharges" yaml:"recharges"`
}

// ConversionResult is the membership conversion rate for one period, with
// the raw component counts for transparency. Rate is defined as 0.0 when
// there are no eligible washes.
type ConversionResult struct {
	Rate           float64 `json:"rate"           yaml:"rate"`
	NewMemberships int     `json:"newMemberships" yaml:"newMemberships"`
	EligibleWashes int     `json:"eligibleWashes" yaml:"eligibleWashes"`
}

// MembershipChangesResult counts recurring account status transitions for
// one period, computed from the status-change event feed.
type MembershipChangesResult struct {
	Total         int            `json:"total"         yaml:"total"`
	Activations   int            `json:"activations"   yaml:"activations"`
	Cancellations int            `json:"cancellations" yaml:"cancellations"`
	ByNewStatus   map[string]int `json:"byNewStatus"   yaml:"byNewStatus"`
}

// StatsReport aggregates every KPI for one period, computed from a single
// shared set of bulk fetches. The report exclusively owns its nested
// results.
type StatsReport struct {
	Start      time.Time        `json:"start"      yaml:"start"`
	End        time.Time        `json:"end"        yaml:"end"`
	Sales      SalesResult      `json:"sales"      yaml:"sales"`
	Washes     WashResult       `json:"washes"     yaml:"washes"`
	Conversion ConversionResult `json:"conversion" yaml:"conversion"`
}
