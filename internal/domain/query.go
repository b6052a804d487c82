package domain

// DateField selects which account date the component filter applies to.
type DateField string

const (
	DateFieldNone    DateField = ""
	DateFieldCreated DateField = "created_at"
	DateFieldEnd     DateField = "end_date"
)

// ExpiringMode selects which predicate the expiring filter applies.
// The two were historically conflated behind a single flag; they are
// distinct and separately named here.
type ExpiringMode string

const (
	// ExpiringModeExpired keeps accounts whose end date is strictly in the past.
	ExpiringModeExpired ExpiringMode = "expired"
	// ExpiringModeThisMonth keeps accounts whose end date falls in the current calendar month.
	ExpiringModeThisMonth ExpiringMode = "this_month"
)

// SortBy selects the sort key for account listings.
type SortBy string

const (
	SortByName    SortBy = "name"
	SortByCreated SortBy = "created"
)

// SortDir selects the sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// FilterAll is the wildcard value for the year/month/day components.
const FilterAll = "all"

// QueryParams is the configuration bag consumed by the query layer.
// Year, Month and Day are each FilterAll or a decimal value; Month is
// 0-indexed to match the wire format the dashboard sends.
type QueryParams struct {
	Search       string
	DateField    DateField
	Year         string
	Month        string
	Day          string
	Expiring     bool
	ExpiringMode ExpiringMode
	SortBy       SortBy
	SortDir      SortDir
	Page         int
	PageSize     int
}

// DefaultQueryParams returns the listing defaults used by the dashboard:
// newest accounts first, first page of ten.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		Year:         FilterAll,
		Month:        FilterAll,
		Day:          FilterAll,
		ExpiringMode: ExpiringModeExpired,
		SortBy:       SortByCreated,
		SortDir:      SortDesc,
		Page:         1,
		PageSize:     10,
	}
}

// Validate rejects invalid pagination parameters up front; there is no
// silent defaulting of a non-positive page size.
func (p *QueryParams) Validate() error {
	if p.PageSize <= 0 {
		return ErrInvalidPageSize
	}
	if p.Page < 1 {
		return ErrInvalidPage
	}
	switch p.SortBy {
	case SortByName, SortByCreated:
	default:
		return ErrInvalidQuery.WithError(nil)
	}
	switch p.SortDir {
	case SortAsc, SortDesc:
	default:
		return ErrInvalidQuery.WithError(nil)
	}
	return nil
}
