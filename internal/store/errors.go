package store

import "fmt"

// ErrStoreAccess indicates that the underlying store could not be read.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrStoreAccess struct {
	Source string
	cause  error
}

// NewErrStoreAccess wraps cause as a store access failure on source.
func NewErrStoreAccess(source string, cause error) *ErrStoreAccess {
	return &ErrStoreAccess{Source: source, cause: cause}
}

func (e *ErrStoreAccess) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("store access failed for %s: %v", e.Source, e.cause)
	}
	return fmt.Sprintf("store access failed for %s", e.Source)
}

func (e *ErrStoreAccess) Unwrap() error { return e.cause }
