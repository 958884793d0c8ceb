package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoStringDocuments indicates the batch contained no string
	// documents after classification. The run aborts without a result.
	ErrNoStringDocuments = errors.New("no string documents in batch")

	// ErrNoItemDocuments indicates the batch contained no item
	// documents after classification. The run aborts without a result.
	ErrNoItemDocuments = errors.New("no item documents in batch")

	// ErrRunConsumed indicates a pipeline instance was started twice.
	// A run is single-use; a new run requires a new instance.
	ErrRunConsumed = errors.New("pipeline run already consumed")
)
