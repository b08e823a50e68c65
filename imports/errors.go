package imports

import (
	"errors"
	"fmt"
)

// ErrInvalidIRI is returned for an import IRI that is empty, unparseable or
// uses a scheme the fetcher cannot load.
var ErrInvalidIRI = errors.New("imports: invalid IRI")

// ErrBodyTooLarge is returned when a document exceeds Config.MaxBodySize.
var ErrBodyTooLarge = errors.New("imports: document too large")

// FetchError reports a failed import fetch.
type FetchError struct {
	IRI        string
	StatusCode int
	Err        error

	transient bool
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.IRI, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.IRI, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newTransientError(iri string, status int, err error) error {
	return &FetchError{IRI: iri, StatusCode: status, Err: err, transient: true}
}

func newFatalError(iri string, status int, err error) error {
	return &FetchError{IRI: iri, StatusCode: status, Err: err}
}

// IsTransient returns true if the error is a fetch failure that may succeed
// on retry.
func IsTransient(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.transient
}
