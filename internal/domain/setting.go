package domain

import "time"

// Setting holds the single row of dashboard configuration that lives in
// the database rather than the environment: the bearer token used
// against the provider console API. SuperAdmin-editable at runtime.
type Setting struct {
	ProviderToken string    `json:"provider_token"`
	UpdatedAt     time.Time `json:"updated_at"`
}
