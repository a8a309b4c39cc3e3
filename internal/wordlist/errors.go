package wordlist

import (
	"encoding/json"
	"fmt"
)

// ErrUnexpectedStatus indicates the service answered with a non-200 status.
type ErrUnexpectedStatus struct {
	StatusCode int
	Body       string
}

func (e *ErrUnexpectedStatus) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("word list service: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("word list service: unexpected status %d (%s)", e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth another attempt.
func (e *ErrUnexpectedStatus) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// ErrMalformedPage indicates the payload is missing expected fields or is
// not valid JSON.
type ErrMalformedPage struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedPage) Error() string {
	return fmt.Sprintf("malformed word list page: %v", e.Err)
}

func (e *ErrMalformedPage) Unwrap() error { return e.Err }
