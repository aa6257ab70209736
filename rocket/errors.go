package rocket

import "errors"

// Sentinel errors returned by Evaluate and Catalog lookups. The search
// driver treats any Evaluate error as a rejected candidate, so callers that
// care about the cause match with errors.Is.
var (
	// ErrEmptySequence is returned when Evaluate is given no parts.
	ErrEmptySequence = errors.New("empty part sequence")

	// ErrNoEngine is returned when no stage of the sequence contains a
	// thrust-producing part.
	ErrNoEngine = errors.New("no thrust-producing part in any stage")

	// ErrPartNotFound is returned by catalog lookups for unknown part names.
	ErrPartNotFound = errors.New("part not found in catalog")
)
