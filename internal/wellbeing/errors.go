package wellbeing

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks an expected empty state: no test taken yet or no diary
// entries for the requested month.
var ErrNotFound = errors.New("no data yet")

// FetchError describes a transport or server failure while loading a source.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": failed"
	}
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether err is a failure the user can retry. Absence of
// data is never retryable.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) {
		return false
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode == 0 || fe.StatusCode >= 500 || fe.StatusCode == http.StatusTooManyRequests
	}
	return true
}
