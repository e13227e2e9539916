package contact

import "github.com/sentiric/sentiric-contact-service/internal/store"

// Field identifies one retrievable contact attribute.
type Field int

const (
	FieldID Field = iota
	FieldGivenName
	FieldMiddleName
	FieldFamilyName
	FieldCompany
	FieldJobTitle
	FieldPhoneNumbers
	FieldEmails
)

// Partition identifies one independently queryable contact data source.
type Partition int

const (
	PartitionName Partition = iota
	PartitionOrganization
	PartitionPhones
	PartitionEmails
)

// Fields lists every field in canonical order, used to build stable column
// projections.
var Fields = []Field{
	FieldID,
	FieldGivenName,
	FieldMiddleName,
	FieldFamilyName,
	FieldCompany,
	FieldJobTitle,
	FieldPhoneNumbers,
	FieldEmails,
}

// Partitions lists every partition, for sizing per-partition slots.
var Partitions = []Partition{
	PartitionName,
	PartitionOrganization,
	PartitionPhones,
	PartitionEmails,
}

var fieldNames = map[string]Field{
	"id":           FieldID,
	"givenName":    FieldGivenName,
	"middleName":   FieldMiddleName,
	"familyName":   FieldFamilyName,
	"company":      FieldCompany,
	"jobTitle":     FieldJobTitle,
	"phoneNumbers": FieldPhoneNumbers,
	"emails":       FieldEmails,
}

var fieldStrings = map[Field]string{
	FieldID:           "id",
	FieldGivenName:    "givenName",
	FieldMiddleName:   "middleName",
	FieldFamilyName:   "familyName",
	FieldCompany:      "company",
	FieldJobTitle:     "jobTitle",
	FieldPhoneNumbers: "phoneNumbers",
	FieldEmails:       "emails",
}

func (f Field) String() string { return fieldStrings[f] }

var partitionStrings = map[Partition]string{
	PartitionName:         "name",
	PartitionOrganization: "organization",
	PartitionPhones:       "phones",
	PartitionEmails:       "emails",
}

func (p Partition) String() string { return partitionStrings[p] }

// FieldFromName maps a caller-supplied field name to its Field.
// Unknown names fail with *ErrUnknownField before any query is issued.
func FieldFromName(name string) (Field, error) {
	f, ok := fieldNames[name]
	if !ok {
		return 0, &ErrUnknownField{Name: name}
	}
	return f, nil
}

// FieldSet is a set of requested contact fields.
type FieldSet map[Field]struct{}

// NewFieldSet builds a FieldSet from explicit fields.
func NewFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// FieldSetFromNames decodes caller-supplied field names into a FieldSet.
func FieldSetFromNames(names []string) (FieldSet, error) {
	s := make(FieldSet, len(names))
	for _, name := range names {
		f, err := FieldFromName(name)
		if err != nil {
			return nil, err
		}
		s[f] = struct{}{}
	}
	return s, nil
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// fieldColumns, her alanın doldurulması için gereken depo kolonlarını tanımlar.
var fieldColumns = map[Field][]store.Column{
	FieldID:           {store.ColContactID},
	FieldGivenName:    {store.ColGivenName},
	FieldMiddleName:   {store.ColMiddleName},
	FieldFamilyName:   {store.ColFamilyName},
	FieldCompany:      {store.ColCompany},
	FieldJobTitle:     {store.ColJobTitle},
	FieldPhoneNumbers: {store.ColPhoneNumber, store.ColPhoneLabel, store.ColPhoneType},
	FieldEmails:       {store.ColEmailAddress, store.ColEmailLabel, store.ColEmailType},
}

// Columns returns the store columns required to populate f.
func Columns(f Field) []store.Column {
	return fieldColumns[f]
}

var fieldPartitions = map[Field]Partition{
	FieldID:           PartitionName,
	FieldGivenName:    PartitionName,
	FieldMiddleName:   PartitionName,
	FieldFamilyName:   PartitionName,
	FieldCompany:      PartitionOrganization,
	FieldJobTitle:     PartitionOrganization,
	FieldPhoneNumbers: PartitionPhones,
	FieldEmails:       PartitionEmails,
}

// PartitionOf returns the partition that supplies f.
func PartitionOf(f Field) Partition {
	return fieldPartitions[f]
}

// PartitionsFor projects a field set onto the partitions that must be
// queried to satisfy it. Total; never fails.
func PartitionsFor(fields FieldSet) []Partition {
	seen := make(map[Partition]struct{}, len(Partitions))
	var out []Partition
	// Fixed iteration order keeps dispatch order stable even though the
	// merge result does not depend on it.
	for _, p := range Partitions {
		for f := range fields {
			if PartitionOf(f) == p {
				if _, ok := seen[p]; !ok {
					seen[p] = struct{}{}
					out = append(out, p)
				}
				break
			}
		}
	}
	return out
}

// FieldsIn restricts s to the fields supplied by partition p.
func (s FieldSet) FieldsIn(p Partition) FieldSet {
	out := make(FieldSet)
	for f := range s {
		if PartitionOf(f) == p {
			out[f] = struct{}{}
		}
	}
	return out
}
