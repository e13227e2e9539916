// sentiric-contact-service/internal/service/service.go
package service

import (
	"context"

	"github.com/sentiric/sentiric-contact-service/internal/store"
)

// ContactService defines the business logic methods for the Contact Service.
type ContactService interface {
	// FetchAllContacts reads every partition required by the named fields,
	// merges the fragments into the process-wide result set and returns its
	// size. Unknown field names fail before any query is issued.
	FetchAllContacts(ctx context.Context, fieldNames []string) (int, error)

	// GetAllContactsPage returns the contacts in [from, to) of the last
	// fetched result set as argument maps containing only populated fields.
	GetAllContactsPage(ctx context.Context, from, to int) ([]map[string]any, error)

	// ClearFetchedContacts discards the stored result set.
	ClearFetchedContacts(ctx context.Context)

	// GetContactImage returns the raw image bytes for a contact, or nil when
	// the contact has no image in the requested size.
	GetContactImage(ctx context.Context, contactID string, size store.ImageSize) ([]byte, error)
}
