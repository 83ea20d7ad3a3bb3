// Package listview filters in-memory snapshots of entity rows the way the list screens do:
// a free-text search, a status selector and an inclusive date range, all composed with AND.
package listview

import (
	"fieldservice/shared/constant"
	"fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/timezone"
	"net/http"
	"strings"
	"sync"
	"time"
)

// StatusAll disables the status clause.
const StatusAll = "All"

// Searchable rows expose the string fields the free-text search looks at.
type Searchable interface {
	SearchFields() []string
}

// Statused rows can be filtered by status equality.
type Statused interface {
	StatusValue() string
}

// Dated rows can be filtered by an inclusive date range. DateValue reports a calendar day;
// its year, month and day are compared as they are.
type Dated interface {
	DateValue() time.Time
}

type Criteria struct {
	Search string
	Status string
	From   *time.Time
	To     *time.Time
}

func (c Criteria) search() string {
	return strings.ToLower(strings.TrimSpace(c.Search))
}

func (c Criteria) status() string {
	status := strings.TrimSpace(c.Status)
	if strings.EqualFold(status, StatusAll) {
		return ""
	}

	return status
}

// IsEmpty reports whether every clause is disabled.
func (c Criteria) IsEmpty() bool {
	return c.search() == "" && c.status() == "" && c.From == nil && c.To == nil
}

// Match reports whether record satisfies every active clause of criteria. Clauses that a
// record type does not support are ignored.
func Match(criteria Criteria, record any) bool {
	if search := criteria.search(); search != "" {
		searchable, ok := record.(Searchable)
		if ok && !containsAny(searchable.SearchFields(), search) {
			return false
		}
	}

	if status := criteria.status(); status != "" {
		statused, ok := record.(Statused)
		if ok && strings.TrimSpace(statused.StatusValue()) != status {
			return false
		}
	}

	if criteria.From != nil || criteria.To != nil {
		dated, ok := record.(Dated)
		if ok && !inRange(dated.DateValue(), criteria.From, criteria.To) {
			return false
		}
	}

	return true
}

func containsAny(fields []string, needle string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// inRange compares calendar days. A zero date never matches a bounded range.
func inRange(value time.Time, from, to *time.Time) bool {
	if value.IsZero() {
		return false
	}

	day := timezone.DateOf(value)

	if from != nil && day.Before(timezone.DateOf(*from)) {
		return false
	}

	if to != nil && day.After(timezone.DateOf(*to)) {
		return false
	}

	return true
}

// Filter returns the rows of snapshot that match criteria, preserving order.
func Filter[T any](snapshot []T, criteria Criteria) []T {
	filtered := make([]T, 0, len(snapshot))

	for _, row := range snapshot {
		if Match(criteria, row) {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// Page slices rows according to params. A non-positive limit returns every row.
func Page[T any](rows []T, params dto.QueryParams) []T {
	if params.Limit <= 0 {
		return rows
	}

	page := max(params.Page, 1)

	start := (page - 1) * params.Limit
	if start >= len(rows) {
		return []T{}
	}

	end := min(start+params.Limit, len(rows))

	return rows[start:end]
}

// CriteriaFromRequest reads q, status, from and to. Dates use the YYYY-MM-DD layout.
func CriteriaFromRequest(r *http.Request) (Criteria, error) {
	query := r.URL.Query()

	criteria := Criteria{
		Search: query.Get(constant.RequestParamSearch),
		Status: query.Get(constant.RequestParamStatus),
	}

	var err error

	if criteria.From, err = parseDate(query.Get(constant.RequestParamFrom), constant.RequestParamFrom); err != nil {
		return criteria, err
	}

	if criteria.To, err = parseDate(query.Get(constant.RequestParamTo), constant.RequestParamTo); err != nil {
		return criteria, err
	}

	if criteria.From != nil && criteria.To != nil && criteria.To.Before(*criteria.From) {
		return criteria, failure.BadRequestFromString("to must not be before from")
	}

	return criteria, nil
}

func parseDate(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	date, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return nil, failure.BadRequestFromString(name + " must be a date in YYYY-MM-DD format")
	}

	return &date, nil
}

// View keeps a snapshot and the filtered rows in sync with the current criteria.
// Every setter recomputes the filtered rows. View is safe for concurrent use.
type View[T any] struct {
	mu       sync.RWMutex
	snapshot []T
	criteria Criteria
	rows     []T
}

func NewView[T any](snapshot []T) *View[T] {
	v := &View[T]{}
	v.Reload(snapshot)

	return v
}

// Reload replaces the snapshot and re-applies the current criteria.
func (v *View[T]) Reload(snapshot []T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.snapshot = snapshot
	v.refresh()
}

func (v *View[T]) SetSearch(search string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.criteria.Search = search
	v.refresh()
}

func (v *View[T]) SetStatus(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.criteria.Status = status
	v.refresh()
}

func (v *View[T]) SetRange(from, to *time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.criteria.From = from
	v.criteria.To = to
	v.refresh()
}

// Apply replaces every clause at once.
func (v *View[T]) Apply(criteria Criteria) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.criteria = criteria
	v.refresh()
}

func (v *View[T]) Criteria() Criteria {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.criteria
}

// Rows returns a copy of the filtered rows.
func (v *View[T]) Rows() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	rows := make([]T, len(v.rows))
	copy(rows, v.rows)

	return rows
}

func (v *View[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.rows)
}

func (v *View[T]) refresh() {
	v.rows = Filter(v.snapshot, v.criteria)
}
