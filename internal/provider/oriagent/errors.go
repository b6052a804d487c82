package oriagent

import "errors"

var (
	// ErrUnavailable indicates the console API did not respond after retries
	ErrUnavailable = errors.New("oriagent console API unavailable")
	// ErrInvalidResponse indicates the console API returned an unparseable body
	ErrInvalidResponse = errors.New("invalid response from oriagent console API")
)
