package storage

import "errors"

// Domain error kinds. Implementations translate backend-specific
// failures (constraint codes, missing rows) into these; everything they
// cannot recognize propagates wrapped and untranslated. Callers test
// with errors.Is.
var (
	// ErrNotFound reports that the requested identity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey reports that a caller-supplied identity already
	// exists (cars are the only entity with a caller-supplied key).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferentialViolation reports a write that would point a row at
	// a nonexistent parent.
	ErrReferentialViolation = errors.New("referenced row does not exist")

	// ErrReferentialInUse reports a delete that would orphan existing
	// child rows.
	ErrReferentialInUse = errors.New("row is referenced by other rows")

	// ErrValidation reports a value the schema itself rejects, such as
	// a car size outside the accepted set.
	ErrValidation = errors.New("invalid value")
)
