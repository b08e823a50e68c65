package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when no ontology is stored under an IRI.
	ErrNotFound = errors.New("ontology not found")

	// ErrChecksumMismatch is returned when stored content no longer matches
	// the checksum recorded with it.
	ErrChecksumMismatch = errors.New("ontology checksum mismatch")
)
