package wellbeing

import "errors"

// State is the lifecycle of one data source on the dashboard.
type State uint8

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	// StateNotFound is a valid terminal state: the source has no data yet.
	StateNotFound
	// StateFailed holds a retryable transport or server error.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateNotFound:
		return "not_found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by its String form.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Source tracks one independently fetched value and its state.
type Source[T any] struct {
	State State
	Data  T
	Err   error
}

// Begin moves the source to Loading from any state. Previously loaded data
// is kept until the next result arrives.
func (s *Source[T]) Begin() {
	s.State = StateLoading
	s.Err = nil
}

// Resolve records the outcome of a fetch. ErrNotFound clears the data; any
// other error keeps the last successful data so it can still be shown.
func (s *Source[T]) Resolve(data T, err error) {
	switch {
	case err == nil:
		s.State = StateLoaded
		s.Data = data
		s.Err = nil
	case errors.Is(err, ErrNotFound):
		var zero T
		s.State = StateNotFound
		s.Data = zero
		s.Err = nil
	default:
		s.State = StateFailed
		s.Err = err
	}
}

// Loading reports whether a fetch is in flight.
func (s Source[T]) Loading() bool {
	return s.State == StateLoading
}
