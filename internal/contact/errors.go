package contact

import "fmt"

// ErrUnknownField indicates that a caller-supplied field name is not one of
// the enumerated contact fields.
type ErrUnknownField struct {
	Name string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown contact field: %q", e.Name)
}
