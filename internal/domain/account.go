package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Account is one provider account as returned by the console API.
// Values are immutable once fetched; a snapshot is replaced wholesale,
// never patched per field.
type Account struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	LastLogin        string `json:"last_login,omitempty"`
	LastLoginIP      string `json:"last_login_ip,omitempty"`
	Language         string `json:"language,omitempty"`
	Theme            string `json:"theme,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	MaxApps          int64  `json:"max_apps"`
	MaxTokens        int64  `json:"max_tokens"`
	MaxFileDatasets  int64  `json:"max_file_datasets"`
	SubscriptionPlan string `json:"subscription_plan,omitempty"`
}

// Validate checks the fields required for an account to enter a snapshot.
// Records failing validation are quarantined at the fetch boundary.
func (a *Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account missing id")
	}
	if a.Email == "" {
		return fmt.Errorf("account %s missing email", a.ID)
	}
	return nil
}

// CreatedTime parses the creation timestamp (seconds since epoch,
// transmitted as a decimal string).
func (a *Account) CreatedTime() (time.Time, error) {
	sec, err := strconv.ParseInt(a.CreatedAt, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", a.CreatedAt, err)
	}
	return time.Unix(sec, 0).UTC(), nil
}

// HasEndDate reports whether the account carries a subscription end date.
func (a *Account) HasEndDate() bool {
	return a.EndDate != ""
}

// EndTime parses the subscription end date (ISO-8601).
func (a *Account) EndTime() (time.Time, error) {
	return ParseISODate(a.EndDate)
}

// isoLayouts are the accepted end_date / last_login formats, most specific first.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISODate parses an ISO-8601 date string, with or without a time component.
func ParseISODate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: unrecognized format", s)
}

// Snapshot is the full in-memory copy of the provider's account list
// plus its capture time. It is always either entirely absent or a
// complete replacement; there is no partial update.
type Snapshot struct {
	Accounts   []Account `json:"accounts"`
	CapturedAt time.Time `json:"captured_at"`
}

// Age returns how long ago the snapshot was captured.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.CapturedAt)
}
