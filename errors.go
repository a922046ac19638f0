package heredity

import (
	"errors"
	"fmt"
)

var (
	// ErrPopulationTooLarge is returned when a population has more
	// individuals than a run is allowed to enumerate. The number of
	// hypotheses grows as 2^n * 3^n.
	ErrPopulationTooLarge = errors.New("population too large for exact inference")

	// ErrAlreadyNormalized is returned by a second call to Normalize.
	ErrAlreadyNormalized = errors.New("posterior has already been normalized")
)

// UsageError reports that the program was invoked incorrectly. No inference
// is performed when one is returned.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Message
}

// DataIntegrityError reports a pedigree that breaks the input contract: a
// duplicate or empty identifier, a parent reference that does not resolve,
// or only one parent being recorded.
type DataIntegrityError struct {
	Person string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	if e.Person == "" {
		return "invalid pedigree: " + e.Reason
	}
	return fmt.Sprintf("invalid pedigree: %s: %s", e.Person, e.Reason)
}

// InvariantViolation reports a defect in the enumeration or scoring, such as
// a field with no probability mass at normalization time. It is not
// recoverable.
type InvariantViolation struct {
	Person string
	Field  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s has no probability mass for %s", e.Person, e.Field)
}
