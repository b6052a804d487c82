// Package query filters, sorts and paginates account snapshots. All
// functions are pure: no I/O, no mutation of the input snapshot, and
// identical inputs always produce identical output.
package query

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// Result is one page of matching accounts plus the total match count
// before pagination.
type Result struct {
	Accounts []domain.Account `json:"data"`
	Total    int              `json:"total"`
}

// Engine applies QueryParams to snapshots. The logger receives a
// warning per record whose date field cannot be parsed; such records
// are excluded (fail closed) rather than aborting the operation.
type Engine struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a query engine.
func New(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "query"),
		now:    time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Apply runs the fixed filter → sort → paginate pipeline. Each stage
// narrows the candidate set; the order matters for correctness.
func (e *Engine) Apply(snap *domain.Snapshot, params domain.QueryParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var accounts []domain.Account
	if snap != nil {
		accounts = snap.Accounts
	}

	filtered := e.filterByDateComponents(accounts, params)
	filtered = e.filterExpiring(filtered, params)
	filtered = filterBySearch(filtered, params.Search)
	sortAccounts(filtered, params.SortBy, params.SortDir)

	total := len(filtered)
	return &Result{
		Accounts: paginate(filtered, params.Page, params.PageSize),
		Total:    total,
	}, nil
}

// filterByDateComponents keeps records whose selected date field
// matches every non-wildcard year/month/day component. Records lacking
// the field, or with an unparseable value, are excluded.
func (e *Engine) filterByDateComponents(accounts []domain.Account, params domain.QueryParams) []domain.Account {
	if params.DateField == domain.DateFieldNone {
		out := make([]domain.Account, len(accounts))
		copy(out, accounts)
		return out
	}

	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		t, ok := e.dateFieldValue(&a, params.DateField)
		if !ok {
			continue
		}
		if !matchComponent(params.Year, t.Year()) {
			continue
		}
		// Month is 0-indexed on the wire.
		if !matchComponent(params.Month, int(t.Month())-1) {
			continue
		}
		if !matchComponent(params.Day, t.Day()) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (e *Engine) dateFieldValue(a *domain.Account, field domain.DateField) (time.Time, bool) {
	switch field {
	case domain.DateFieldCreated:
		t, err := a.CreatedTime()
		if err != nil {
			e.logger.Warn("excluding account with unparseable created_at",
				"account_id", a.ID, "error", err)
			return time.Time{}, false
		}
		return t, true
	case domain.DateFieldEnd:
		if !a.HasEndDate() {
			return time.Time{}, false
		}
		t, err := a.EndTime()
		if err != nil {
			e.logger.Warn("excluding account with unparseable end_date",
				"account_id", a.ID, "error", err)
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

func matchComponent(want string, got int) bool {
	if want == "" || want == domain.FilterAll {
		return true
	}
	n, err := strconv.Atoi(want)
	if err != nil {
		return false
	}
	return n == got
}

// filterExpiring keeps records by end-date predicate: already expired
// (strictly before now) or expiring within the current calendar month.
func (e *Engine) filterExpiring(accounts []domain.Account, params domain.QueryParams) []domain.Account {
	if !params.Expiring {
		return accounts
	}

	now := e.now()
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if !a.HasEndDate() {
			continue
		}
		end, err := a.EndTime()
		if err != nil {
			e.logger.Warn("excluding account with unparseable end_date",
				"account_id", a.ID, "error", err)
			continue
		}
		switch params.ExpiringMode {
		case domain.ExpiringModeThisMonth:
			if end.Year() == now.Year() && end.Month() == now.Month() {
				out = append(out, a)
			}
		default: // ExpiringModeExpired
			if end.Before(now) {
				out = append(out, a)
			}
		}
	}
	return out
}

// filterBySearch keeps records whose name, email or role contains the
// search string, case-insensitively.
func filterBySearch(accounts []domain.Account, search string) []domain.Account {
	if search == "" {
		return accounts
	}

	needle := strings.ToLower(search)
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Email), needle) ||
			strings.Contains(strings.ToLower(a.Role), needle) {
			out = append(out, a)
		}
	}
	return out
}

// sortAccounts sorts in place. The sort is stable: records with equal
// keys keep their relative order from the filtered sequence.
func sortAccounts(accounts []domain.Account, by domain.SortBy, dir domain.SortDir) {
	desc := dir == domain.SortDesc
	switch by {
	case domain.SortByName:
		sort.SliceStable(accounts, func(i, j int) bool {
			a := strings.ToLower(accounts[i].Name)
			b := strings.ToLower(accounts[j].Name)
			if desc {
				return a > b
			}
			return a < b
		})
	default: // SortByCreated
		sort.SliceStable(accounts, func(i, j int) bool {
			a := createdSortKey(&accounts[i])
			b := createdSortKey(&accounts[j])
			if desc {
				return a > b
			}
			return a < b
		})
	}
}

// createdSortKey returns the creation timestamp for ordering.
// Unparseable values sort as zero rather than failing the whole sort.
func createdSortKey(a *domain.Account) int64 {
	sec, err := strconv.ParseInt(a.CreatedAt, 10, 64)
	if err != nil {
		return 0
	}
	return sec
}

// paginate slices out the requested 1-based page. A page past the end
// yields an empty page, not an error.
func paginate(accounts []domain.Account, page, pageSize int) []domain.Account {
	start := (page - 1) * pageSize
	if start >= len(accounts) {
		return []domain.Account{}
	}
	end := start + pageSize
	if end > len(accounts) {
		end = len(accounts)
	}
	return accounts[start:end]
}
