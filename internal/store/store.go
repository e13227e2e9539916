// Package store, kontak verisinin okunduğu tablosal kaynağı soyutlar.
//
// The contact data lives in independently queryable locations: phone and
// email rows have their own type-specific tables, while structured-name and
// organization rows share the multi-purpose contact_data table and are
// discriminated by the kind column.
package store

import "context"

// Column identifies a single projectable column of a source.
type Column string

// Columns of the contact sources.
const (
	ColContactID Column = "contact_id"
	ColKind      Column = "kind"

	ColPhoneNumber Column = "phone_number"
	ColPhoneLabel  Column = "phone_label"
	ColPhoneType   Column = "phone_type"

	ColEmailAddress Column = "email_address"
	ColEmailLabel   Column = "email_label"
	ColEmailType    Column = "email_type"

	ColGivenName  Column = "given_name"
	ColMiddleName Column = "middle_name"
	ColFamilyName Column = "family_name"

	ColCompany  Column = "company"
	ColJobTitle Column = "job_title"
)

// Base locations of the contact sources.
const (
	SourcePhones = "contact_phones"
	SourceEmails = "contact_emails"
	SourceData   = "contact_data"
	SourceImages = "contact_images"
)

// Row kinds of the shared contact_data table.
const (
	KindStructuredName = "structured_name"
	KindOrganization   = "organization"
)

// ImageSize selects which rendition of a contact image is retrieved.
type ImageSize string

const (
	ImageThumbnail ImageSize = "thumbnail"
	ImageFull      ImageSize = "full"
)

// Query describes one read against a source: a base location, a column
// projection, an optional row filter with positional arguments, and an
// optional sort expression.
type Query struct {
	Source     string
	Projection []Column
	Filter     string
	FilterArgs []any
	OrderBy    string
}

// Store, kontak deposuna yapılan tüm okuma işlemlerini soyutlar.
type Store interface {
	// Query executes q and returns a forward-only cursor over the matching
	// rows. The caller owns the cursor and must close it.
	Query(ctx context.Context, q Query) (Cursor, error)

	// Image returns the raw image bytes for a contact, or (nil, nil) if the
	// contact has no image in the requested size.
	Image(ctx context.Context, contactID string, size ImageSize) ([]byte, error)

	// Close releases the underlying resources.
	Close() error
}

// Cursor is a forward-only iterator over query results. Columns are accessed
// by their position in the query projection; a NULL value decodes to the zero
// value, never to an error.
type Cursor interface {
	// Next advances to the next row, returning false when the rows are
	// exhausted or an error occurred. Check Err after Next returns false.
	Next() bool

	// Text returns the value at projection position pos as a string.
	Text(pos int) string

	// Int returns the value at projection position pos as an integer.
	Int(pos int) int64

	// Err returns the first error encountered during iteration, if any.
	Err() error

	// Close releases the cursor.
	Close() error
}
