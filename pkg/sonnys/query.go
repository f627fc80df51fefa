package sonnys

import (
	"net/url"
	"strconv"
)

// QueryParams represents query parameters for list endpoints.
type QueryParams struct {
	// StartDate and EndDate filter ranged endpoints. The upstream API takes
	// Unix timestamps on some endpoints and plain dates on others; values
	// are passed through as given.
	StartDate string
	EndDate   string

	// Site scopes the query to one site code; Region to one region.
	Site   string
	Region string

	// Filters holds additional endpoint-specific parameters, such as
	// first_name on the customer search.
	Filters map[string][]string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithDateRange sets the start and end date filters.
func (p *QueryParams) WithDateRange(startDate, endDate string) *QueryParams {
	p.StartDate = startDate
	p.EndDate = endDate

	return p
}

// WithUnixRange sets the start and end date filters from Unix timestamps.
func (p *QueryParams) WithUnixRange(start, end int64) *QueryParams {
	p.StartDate = strconv.FormatInt(start, 10)
	p.EndDate = strconv.FormatInt(end, 10)

	return p
}

// WithSite sets the site filter.
func (p *QueryParams) WithSite(site string) *QueryParams {
	p.Site = site

	return p
}

// WithRegion sets the region filter.
func (p *QueryParams) WithRegion(region string) *QueryParams {
	p.Region = region

	return p
}

// WithFilter adds an endpoint-specific filter value.
func (p *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// ToValues converts the params to url.Values.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if p.StartDate != "" {
		values.Set("startDate", p.StartDate)
	}

	if p.EndDate != "" {
		values.Set("endDate", p.EndDate)
	}

	if p.Site != "" {
		values.Set("site", p.Site)
	}

	if p.Region != "" {
		values.Set("region", p.Region)
	}

	for key, vals := range p.Filters {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	return values
}
