package sonnys

import (
	"fmt"
	"time"
)

// DateInput is a date range bound: an ISO-8601 string or a time.Time.
type DateInput interface{}

// DateChunk is one sub-window of a larger date range. Start and End are
// inclusive calendar dates in "2006-01-02" form.
type DateChunk struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

const dateOnly = "2006-01-02"

// isoLayouts are tried in order when parsing string date inputs.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateOnly,
}

// ParseDateRange parses and validates a start/end range. Each bound accepts
// an ISO-8601 string or a time.Time. Zone-less inputs are tagged UTC;
// zone-aware inputs pass through unchanged. Fails when a string does not
// parse or when start is after end.
func ParseDateRange(start, end DateInput) (time.Time, time.Time, error) {
	startTime, err := normalizeDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing start: %w", err)
	}

	endTime, err := normalizeDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing end: %w", err)
	}

	if startTime.After(endTime) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return startTime, endTime, nil
}

func normalizeDate(value DateInput) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseISO(v)
	default:
		return time.Time{}, fmt.Errorf("unsupported date input type %T", value)
	}
}

func parseISO(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}

// BuildDateChunks splits an inclusive calendar date range into consecutive
// windows each spanning at most maxDays days, with no gaps and no overlaps:
// the end of one chunk plus one day is the start of the next. A range whose
// span equals maxDays yields a single chunk. Operates on plain calendar
// dates, matching the query convention of the ranged endpoints.
func BuildDateChunks(startDate, endDate string, maxDays int) ([]DateChunk, error) {
	if maxDays <= 0 {
		return nil, ErrInvalidChunkDays
	}

	start, err := time.Parse(dateOnly, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}

	end, err := time.Parse(dateOnly, endDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}

	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	var chunks []DateChunk

	for cursor := start; !cursor.After(end); {
		// maxDays is an inclusive span: a 14-day chunk runs day 1..14.
		chunkEnd := cursor.AddDate(0, 0, maxDays-1)
		if chunkEnd.After(end) {
			chunkEnd = end
		}

		chunks = append(chunks, DateChunk{
			Start: cursor.Format(dateOnly),
			End:   chunkEnd.Format(dateOnly),
		})

		cursor = chunkEnd.AddDate(0, 0, 1)
	}

	return chunks, nil
}
