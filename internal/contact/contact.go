// Package contact, birleşik kontak kaydını ve alan/partisyon eşlemesini tanımlar.
//
// A Contact is assembled from fragments: partially-populated records, each
// produced by reading one partition and carrying only the fields that
// partition can supply. Fragments sharing an id describe the same logical
// person and are merged per the union rule implemented by Merge.
package contact

// StructuredName holds the name components supplied by the name partition.
type StructuredName struct {
	Given  string
	Middle string
	Family string
}

// Organization holds the employment details supplied by the organization
// partition.
type Organization struct {
	Company string
	Title   string
}

// Phone is a single phone entry with its resolved label.
type Phone struct {
	Number string
	Label  string
}

// Email is a single email entry with its resolved label.
type Email struct {
	Address string
	Label   string
}

// Contact is the unit of identity. Only the fields requested by the caller
// are ever populated; everything else stays at its zero value.
type Contact struct {
	ID           string
	Name         *StructuredName
	Organization *Organization
	Phones       []Phone
	Emails       []Email
}

// Merge combines two fragments sharing the same id into a new record.
// List-valued fields concatenate; single-valued fields from other fill in
// only when c does not carry them. Fragments are never mutated, so the
// operation is commutative and associative over fragments from distinct
// partitions.
func Merge(c, other Contact) Contact {
	out := Contact{ID: c.ID}
	if out.ID == "" {
		out.ID = other.ID
	}

	out.Name = c.Name
	if out.Name == nil {
		out.Name = other.Name
	}
	out.Organization = c.Organization
	if out.Organization == nil {
		out.Organization = other.Organization
	}

	if n := len(c.Phones) + len(other.Phones); n > 0 {
		out.Phones = make([]Phone, 0, n)
		out.Phones = append(out.Phones, c.Phones...)
		out.Phones = append(out.Phones, other.Phones...)
	}
	if n := len(c.Emails) + len(other.Emails); n > 0 {
		out.Emails = make([]Email, 0, n)
		out.Emails = append(out.Emails, c.Emails...)
		out.Emails = append(out.Emails, other.Emails...)
	}
	return out
}

// ToMap projects the contact onto an argument map for the caller, emitting
// only requested and populated fields. The id is the identity of the record
// and is always present.
func (c Contact) ToMap(fields FieldSet) map[string]any {
	m := map[string]any{"id": c.ID}

	if c.Name != nil {
		if fields.Has(FieldGivenName) && c.Name.Given != "" {
			m["givenName"] = c.Name.Given
		}
		if fields.Has(FieldMiddleName) && c.Name.Middle != "" {
			m["middleName"] = c.Name.Middle
		}
		if fields.Has(FieldFamilyName) && c.Name.Family != "" {
			m["familyName"] = c.Name.Family
		}
	}
	if c.Organization != nil {
		if fields.Has(FieldCompany) && c.Organization.Company != "" {
			m["company"] = c.Organization.Company
		}
		if fields.Has(FieldJobTitle) && c.Organization.Title != "" {
			m["jobTitle"] = c.Organization.Title
		}
	}
	if fields.Has(FieldPhoneNumbers) && len(c.Phones) > 0 {
		phones := make([]map[string]any, 0, len(c.Phones))
		for _, p := range c.Phones {
			phones = append(phones, map[string]any{"number": p.Number, "label": p.Label})
		}
		m["phoneNumbers"] = phones
	}
	if fields.Has(FieldEmails) && len(c.Emails) > 0 {
		emails := make([]map[string]any, 0, len(c.Emails))
		for _, e := range c.Emails {
			emails = append(emails, map[string]any{"address": e.Address, "label": e.Label})
		}
		m["emails"] = emails
	}
	return m
}
