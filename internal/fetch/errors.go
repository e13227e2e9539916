package fetch

import (
	"fmt"

	"github.com/sentiric/sentiric-contact-service/internal/contact"
)

// ErrRange indicates invalid pagination bounds over the stored result set.
type ErrRange struct {
	From int
	To   int
	Size int
}

func (e *ErrRange) Error() string {
	return fmt.Sprintf("page range [%d, %d) out of bounds for result set of size %d", e.From, e.To, e.Size)
}

// ErrPartitionQuery indicates that one partition task failed to query the
// underlying store.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrPartitionQuery struct {
	Partition contact.Partition
	cause     error
}

func (e *ErrPartitionQuery) Error() string {
	return fmt.Sprintf("partition %s query failed: %v", e.Partition, e.cause)
}

func (e *ErrPartitionQuery) Unwrap() error { return e.cause }
