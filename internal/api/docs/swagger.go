package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// LoginRequest represents the staff login payload
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"s3cret"`
}

// SessionResponse represents the current authenticated session
type SessionResponse struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username string `json:"username" example:"admin"`
	Role     string `json:"role" example:"Admin"`
}

// AccountData represents one managed account as mirrored from the provider
type AccountData struct {
	ID               string `json:"id" example:"a1b2c3"`
	Name             string `json:"name" example:"Jane Doe"`
	Email            string `json:"email" example:"jane@example.com"`
	Role             string `json:"role" example:"owner"`
	CreatedAt        string `json:"created_at" example:"1704067200"`
	EndDate          string `json:"end_date,omitempty" example:"2026-12-31T00:00:00Z"`
	MaxApps          int    `json:"max_apps" example:"10"`
	MaxTokens        int    `json:"max_tokens" example:"100000"`
	MaxFileDatasets  int    `json:"max_file_datasets" example:"5"`
	SubscriptionPlan string `json:"subscription_plan,omitempty" example:"pro"`
}

// AccountListResponse represents a filtered, paginated account page
type AccountListResponse struct {
	Data  []AccountData `json:"data"`
	Total int           `json:"total" example:"120"`
}

// SummaryResponse represents the dashboard headline numbers
type SummaryResponse struct {
	Total             int      `json:"total" example:"120"`
	YearlyGrowth      *float64 `json:"yearlyGrowth,omitempty" example:"25.00"`
	ExpiredCount      int      `json:"expiredAccountsCount" example:"7"`
	ExpiringThisMonth int      `json:"totalExpiringAccounts" example:"3"`
}

// GrowthPointData represents one point of the cumulative growth series
type GrowthPointData struct {
	Date  string `json:"date" example:"2025-03"`
	Total int    `json:"totalUsers" example:"84"`
}

// ExtendRequest represents a subscription extension payload
type ExtendRequest struct {
	AccountID string `json:"user_id" example:"a1b2c3"`
	EndDate   string `json:"end_date" example:"2026-12-31"`
}

// QuotaRequest represents a quota update payload
type QuotaRequest struct {
	AccountID       string `json:"user_id" example:"a1b2c3"`
	EndDate         string `json:"end_date" example:"2026-12-31"`
	MaxApps         int    `json:"max_apps" example:"10"`
	MaxTokens       int    `json:"max_tokens" example:"100000"`
	MaxFileDatasets int    `json:"max_file_datasets" example:"5"`
}

// RemoveRequest represents an account removal payload
type RemoveRequest struct {
	AccountID string `json:"user_id" example:"a1b2c3"`
}

// StaffUserData represents a dashboard staff account
type StaffUserData struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username string `json:"username" example:"operator"`
	Role     string `json:"role" example:"Viewer"`
}

// StaffUserRequest represents a staff create or update payload
type StaffUserRequest struct {
	Username string `json:"username" example:"operator"`
	Password string `json:"password" example:"s3cret"`
	Role     string `json:"role" example:"Viewer"`
}

// DayCountData represents one bucket of the daily registration histogram
type DayCountData struct {
	Day   string `json:"day" example:"14"`
	Count int    `json:"count" example:"2"`
}

// MonthCountData represents one bucket of the monthly registration histogram
type MonthCountData struct {
	Month string `json:"month" example:"Jun"`
	Count int    `json:"count" example:"4"`
}

// StatusBreakdownData represents the active/expired account split
type StatusBreakdownData struct {
	Active  int `json:"active" example:"113"`
	Expired int `json:"expired" example:"7"`
}

// SettingsResponse represents the provider settings with the token redacted
type SettingsResponse struct {
	ProviderTokenPrefix string `json:"provider_token_prefix" example:"ori-live..."`
	UpdatedAt           string `json:"updated_at" example:"2025-01-01T00:00:00Z"`
}

// UpdateSettingsRequest represents a provider token update payload
type UpdateSettingsRequest struct {
	ProviderToken string `json:"provider_token" example:"ori-live-abcdef1234567890"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"BAD_REQUEST"`
	Message string `json:"message" example:"Request validation failed"`
}

// EmptyResponse represents no content response (204)
type EmptyResponse struct{}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Oriboard Admin API",
		Version:     "v1.0.0",
		Description: "Administrative dashboard API for managing Oriagent platform accounts: staff auth, cached account snapshots, filtering and aggregation, proxied account mutations",
		Host:        "localhost:3000",
		Path:        "/v1",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /v1/auth/login - Staff login
		endpoint.New(
			endpoint.POST,
			"/auth/login",
			endpoint.WithTags("Auth"),
			endpoint.WithSummary("Authenticate a staff user"),
			endpoint.WithDescription("Verifies staff credentials and issues a session token, also set as the authToken cookie. Five consecutive failures lock the account for 30 minutes."),
			endpoint.WithBody(LoginRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SessionResponse{}, "200", "Authenticated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "ACCOUNT_LOCKED", Message: "Account temporarily locked"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /v1/auth/logout - Staff logout
		endpoint.New(
			endpoint.POST,
			"/auth/logout",
			endpoint.WithTags("Auth"),
			endpoint.WithSummary("End the current session"),
			endpoint.WithDescription("Expires the authToken cookie"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Logged out"),
			}),
		),

		// GET /v1/auth/me - Current session
		endpoint.New(
			endpoint.GET,
			"/auth/me",
			endpoint.WithTags("Auth"),
			endpoint.WithSummary("Get the current session"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SessionResponse{}, "200", "Session details"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/accounts - List accounts
		endpoint.New(
			endpoint.GET,
			"/accounts",
			endpoint.WithTags("Accounts"),
			endpoint.WithSummary("List managed accounts"),
			endpoint.WithDescription("Returns a filtered, sorted and paginated page of the cached account snapshot. The snapshot is refreshed from the provider when older than the configured TTL."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("search", parameter.Query, parameter.WithDescription("Case-insensitive substring match on name, email or role")),
				parameter.StrParam("dateField", parameter.Query, parameter.WithDescription("Date filter field: created_at or end_date")),
				parameter.StrParam("year", parameter.Query, parameter.WithDescription("Year filter, or 'all'")),
				parameter.StrParam("month", parameter.Query, parameter.WithDescription("Zero-indexed month filter, or 'all'")),
				parameter.StrParam("day", parameter.Query, parameter.WithDescription("Day-of-month filter, or 'all'")),
				parameter.StrParam("expiring", parameter.Query, parameter.WithDescription("Set to 'true' to filter by subscription expiry")),
				parameter.StrParam("expiringMode", parameter.Query, parameter.WithDescription("expired or this_month")),
				parameter.StrParam("sortOption", parameter.Query, parameter.WithDescription("Sort key: name or created")),
				parameter.StrParam("sortDirection", parameter.Query, parameter.WithDescription("asc or desc")),
				parameter.IntParam("page", parameter.Query, parameter.WithDescription("Page number, starting at 1")),
				parameter.IntParam("pageSize", parameter.Query, parameter.WithDescription("Rows per page (max 100)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AccountListResponse{}, "200", "Account page"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "INVALID_QUERY", Message: "Invalid filter parameters"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "SNAPSHOT_UNAVAILABLE", Message: "No account snapshot available"}, "503", "Service Unavailable"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/accounts/sync - Force refresh
		endpoint.New(
			endpoint.POST,
			"/accounts/sync",
			endpoint.WithTags("Accounts"),
			endpoint.WithSummary("Force a snapshot refresh"),
			endpoint.WithDescription("Fetches the account list from the provider immediately, bypassing the TTL"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AccountListResponse{}, "200", "Snapshot refreshed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "UPSTREAM_FETCH_FAILED", Message: "Provider request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/stats/summary - Headline numbers
		endpoint.New(
			endpoint.GET,
			"/stats/summary",
			endpoint.WithTags("Stats"),
			endpoint.WithSummary("Get dashboard summary"),
			endpoint.WithDescription("Total accounts, year-over-year growth, expired count and accounts expiring this month"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SummaryResponse{}, "200", "Summary"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "SNAPSHOT_UNAVAILABLE", Message: "No account snapshot available"}, "503", "Service Unavailable"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/stats/growth - Cumulative growth series
		endpoint.New(
			endpoint.GET,
			"/stats/growth",
			endpoint.WithTags("Stats"),
			endpoint.WithSummary("Get cumulative account growth"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("year", parameter.Query, parameter.WithDescription("Restrict the series to one year, or 'all'")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]GrowthPointData{}, "200", "Growth series"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/stats/daily - Daily registrations for a month
		endpoint.New(
			endpoint.GET,
			"/stats/daily",
			endpoint.WithTags("Stats"),
			endpoint.WithSummary("Get daily registrations for one month"),
			endpoint.WithDescription("One bucket per day of the requested month, including zero days. Month is zero-indexed."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("year", parameter.Query, parameter.WithDescription("Calendar year")),
				parameter.IntParam("month", parameter.Query, parameter.WithDescription("Zero-indexed month (0-11)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]DayCountData{}, "200", "Daily histogram"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "INVALID_QUERY", Message: "Invalid year or month"}, "422", "Unprocessable Entity"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/stats/yearly - Monthly registrations for a year
		endpoint.New(
			endpoint.GET,
			"/stats/yearly",
			endpoint.WithTags("Stats"),
			endpoint.WithSummary("Get monthly registrations for one year"),
			endpoint.WithDescription("Twelve buckets, one per month of the requested year, including zero months"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("year", parameter.Query, parameter.WithDescription("Calendar year")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]MonthCountData{}, "200", "Monthly histogram"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/stats/status - Active/expired breakdown
		endpoint.New(
			endpoint.GET,
			"/stats/status",
			endpoint.WithTags("Stats"),
			endpoint.WithSummary("Get the active/expired account split"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StatusBreakdownData{}, "200", "Status breakdown"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "SNAPSHOT_UNAVAILABLE", Message: "No account snapshot available"}, "503", "Service Unavailable"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/accounts/extend - Extend subscription
		endpoint.New(
			endpoint.POST,
			"/accounts/extend",
			endpoint.WithTags("Mutations"),
			endpoint.WithSummary("Extend an account subscription"),
			endpoint.WithDescription("Proxies the extension to the provider and forces a snapshot refresh on success"),
			endpoint.WithBody(ExtendRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Subscription extended"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "UPSTREAM_FETCH_FAILED", Message: "Provider request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/accounts/quota - Update quotas
		endpoint.New(
			endpoint.POST,
			"/accounts/quota",
			endpoint.WithTags("Mutations"),
			endpoint.WithSummary("Update account quotas"),
			endpoint.WithDescription("Pushes the end date plus the app, token and file dataset limits to the provider, one call per field"),
			endpoint.WithBody(QuotaRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Quotas updated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "UPSTREAM_FETCH_FAILED", Message: "Provider request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/accounts/remove - Remove account
		endpoint.New(
			endpoint.POST,
			"/accounts/remove",
			endpoint.WithTags("Mutations"),
			endpoint.WithSummary("Remove an account"),
			endpoint.WithDescription("Proxies the removal to the provider. Super admin only."),
			endpoint.WithBody(RemoveRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Account removed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "UPSTREAM_FETCH_FAILED", Message: "Provider request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/staff - List staff users
		endpoint.New(
			endpoint.GET,
			"/staff",
			endpoint.WithTags("Staff"),
			endpoint.WithSummary("List staff users"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]StaffUserData{}, "200", "Staff users"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/staff - Create staff user
		endpoint.New(
			endpoint.POST,
			"/staff",
			endpoint.WithTags("Staff"),
			endpoint.WithSummary("Create a staff user"),
			endpoint.WithBody(StaffUserRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StaffUserData{}, "201", "Staff user created"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "STAFF_USER_ALREADY_EXISTS", Message: "Username already taken"}, "409", "Conflict"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// PUT /v1/staff/{id} - Update staff user
		endpoint.New(
			endpoint.PUT,
			"/staff/{id}",
			endpoint.WithTags("Staff"),
			endpoint.WithSummary("Update a staff user"),
			endpoint.WithDescription("Changes username, role and optionally the password. An empty password keeps the current one."),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Staff user identifier")),
			),
			endpoint.WithBody(StaffUserRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StaffUserData{}, "200", "Staff user updated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "STAFF_USER_NOT_FOUND", Message: "Staff user not found"}, "404", "Not Found"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// DELETE /v1/staff/{id} - Delete staff user
		endpoint.New(
			endpoint.DELETE,
			"/staff/{id}",
			endpoint.WithTags("Staff"),
			endpoint.WithSummary("Delete a staff user"),
			endpoint.WithDescription("Deleting your own account is rejected"),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Staff user identifier")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Staff user deleted"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "STAFF_USER_NOT_FOUND", Message: "Staff user not found"}, "404", "Not Found"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/settings - Provider settings
		endpoint.New(
			endpoint.GET,
			"/settings",
			endpoint.WithTags("Settings"),
			endpoint.WithSummary("Get the provider settings"),
			endpoint.WithDescription("Returns a redacted prefix of the stored provider token; the full value never leaves the server"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SettingsResponse{}, "200", "Settings"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "PROVIDER_TOKEN_NOT_CONFIGURED", Message: "No provider token stored"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// PUT /v1/settings - Update provider token
		endpoint.New(
			endpoint.PUT,
			"/settings",
			endpoint.WithTags("Settings"),
			endpoint.WithSummary("Update the provider API token"),
			endpoint.WithBody(UpdateSettingsRequest{}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Settings updated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Insufficient role"}, "403", "Forbidden"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
