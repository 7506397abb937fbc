package cbcloud

import "time"

// timeRangeFormat matches the timestamp format the search API expects in
// time_range blocks.
const timeRangeFormat = "2006-01-02T15:04:05.000000Z"

// SortEntry orders search results by one field.
type SortEntry struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// TimeRange bounds a search to a window of event time.
type TimeRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Query builds the request body for the v7 search APIs: a free-text query,
// a criteria mapping from field name to accepted values, an optional
// time_range block, and result shaping (rows, sort).
//
// The zero value is not usable; create queries with NewQuery.
type Query struct {
	query     string
	criteria  map[string]any
	timeRange *TimeRange
	rows      int
	sort      []SortEntry
}

// NewQuery creates an empty search query.
func NewQuery() *Query {
	return &Query{criteria: make(map[string]any)}
}

// AddCriteria restricts results to records whose field named key matches one
// of values. Setting the same key again replaces the previous values rather
// than merging with them.
func (q *Query) AddCriteria(key string, values ...string) *Query {
	q.setCriteria(key, values)
	return q
}

// AddCriteriaInts is AddCriteria for criteria fields the API types as
// integers (device IDs, policy IDs, ports).
func (q *Query) AddCriteriaInts(key string, values ...int) *Query {
	q.setCriteria(key, values)
	return q
}

// setCriteria is the single primitive all criteria setters funnel through.
// Overwrite semantics: the last value set for a key wins.
func (q *Query) setCriteria(key string, value any) {
	if q.criteria == nil {
		q.criteria = make(map[string]any)
	}
	q.criteria[key] = value
}

// SetQuery sets the free-text query string, distinct from criteria filters.
func (q *Query) SetQuery(query string) *Query {
	q.query = query
	return q
}

// SetTimeRange bounds the search to records between start and end.
func (q *Query) SetTimeRange(start, end time.Time) *Query {
	q.timeRange = &TimeRange{
		Start: start.UTC().Format(timeRangeFormat),
		End:   end.UTC().Format(timeRangeFormat),
	}
	return q
}

// SetRows sets how many rows to request per page.
func (q *Query) SetRows(rows int) *Query {
	q.rows = rows
	return q
}

// SortBy orders results by field in the given order ("ASC" or "DESC").
func (q *Query) SortBy(field, order string) *Query {
	q.sort = append(q.sort, SortEntry{Field: field, Order: order})
	return q
}

// requestBody assembles the search request body, merging in pagination when
// page is non-nil. Page rows take precedence over SetRows.
func (q *Query) requestBody(page *PageOptions) map[string]any {
	body := make(map[string]any)
	if q.query != "" {
		body["query"] = q.query
	}
	if len(q.criteria) > 0 {
		body["criteria"] = q.criteria
	}
	if q.timeRange != nil {
		body["time_range"] = q.timeRange
	}
	if len(q.sort) > 0 {
		body["sort"] = q.sort
	}
	if q.rows > 0 {
		body["rows"] = q.rows
	}
	if page != nil {
		if page.Start > 0 {
			body["start"] = page.Start
		}
		if page.Rows > 0 {
			body["rows"] = page.Rows
		}
	}
	return body
}
