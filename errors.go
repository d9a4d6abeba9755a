package qlocate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMap indicates the grid map has no rows or no columns.
	ErrEmptyMap = errors.New("qlocate: map must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("qlocate: all map rows must have the same length")
	// ErrNonBinaryCell indicates a map cell outside {0,1}.
	ErrNonBinaryCell = errors.New("qlocate: map cells must be 0 or 1")
	// ErrEmptyPattern indicates a sensor pattern with no values.
	ErrEmptyPattern = errors.New("qlocate: pattern must have at least one value")
	// ErrNonBinaryPattern indicates a pattern value outside {0,1}.
	ErrNonBinaryPattern = errors.New("qlocate: pattern values must be 0 or 1")
	// ErrPatternTooLong indicates a pattern longer than the map dimension it scans.
	ErrPatternTooLong = errors.New("qlocate: pattern exceeds the map dimension it scans")
	// ErrNilBackend indicates a locator was constructed without a backend.
	ErrNilBackend = errors.New("qlocate: backend must not be nil")
	// ErrMalformedCounts indicates a backend returned counts outside the state space.
	ErrMalformedCounts = errors.New("qlocate: backend returned malformed outcome counts")
	// ErrNoCounts indicates a backend returned an empty outcome distribution.
	ErrNoCounts = errors.New("qlocate: backend returned no outcome counts")
)

/*
ConfigurationError reports invalid map or pattern input. It is raised
while the oracle is being built, before any amplification round runs,
and carries the name of the input that violated its invariant.
*/
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

/*
BackendError reports a failed or malformed execution backend
submission. It is distinct from a low-confidence result: the run did
not complete, and no partial outcome counts are produced.
*/
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
