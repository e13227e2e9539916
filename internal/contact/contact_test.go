package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnion(t *testing.T) {
	name := Contact{ID: "1", Name: &StructuredName{Given: "Ann"}}
	phones := Contact{ID: "1", Phones: []Phone{{Number: "555-0100", Label: "mobile"}}}

	merged := Merge(name, phones)

	assert.Equal(t, "1", merged.ID)
	require.NotNil(t, merged.Name)
	assert.Equal(t, "Ann", merged.Name.Given)
	require.Len(t, merged.Phones, 1)
	assert.Equal(t, "555-0100", merged.Phones[0].Number)
}

func TestMergeCommutative(t *testing.T) {
	a := Contact{ID: "7", Organization: &Organization{Company: "Sentiric"}}
	b := Contact{ID: "7", Emails: []Email{{Address: "ann@example.com", Label: "work"}}}

	ab := Merge(a, b)
	ba := Merge(b, a)

	assert.Equal(t, ab, ba)
}

func TestMergeConcatenatesLists(t *testing.T) {
	a := Contact{ID: "1", Phones: []Phone{{Number: "555-0100"}}}
	b := Contact{ID: "1", Phones: []Phone{{Number: "555-0101"}}}

	merged := Merge(a, b)

	require.Len(t, merged.Phones, 2)
}

func TestMergeDoesNotOverwriteSingleValued(t *testing.T) {
	a := Contact{ID: "1", Name: &StructuredName{Given: "Ann"}}
	b := Contact{ID: "1", Name: &StructuredName{Given: "Other"}}

	merged := Merge(a, b)

	assert.Equal(t, "Ann", merged.Name.Given)
}

func TestMergeDoesNotMutateFragments(t *testing.T) {
	a := Contact{ID: "1", Phones: make([]Phone, 1, 4)}
	a.Phones[0] = Phone{Number: "555-0100"}
	b := Contact{ID: "1", Phones: []Phone{{Number: "555-0101"}}}

	_ = Merge(a, b)
	_ = Merge(a, Contact{ID: "1", Phones: []Phone{{Number: "555-0199"}}})

	require.Len(t, a.Phones, 1)
	assert.Equal(t, "555-0100", a.Phones[0].Number)
}

func TestToMapSparsePopulation(t *testing.T) {
	c := Contact{
		ID:     "1",
		Phones: []Phone{{Number: "555-0100", Label: "mobile"}},
	}

	m := c.ToMap(NewFieldSet(FieldPhoneNumbers))

	assert.Equal(t, "1", m["id"])
	assert.Contains(t, m, "phoneNumbers")
	assert.NotContains(t, m, "givenName")
	assert.NotContains(t, m, "company")
	assert.NotContains(t, m, "emails")
}

func TestToMapOmitsUnpopulated(t *testing.T) {
	c := Contact{ID: "2", Name: &StructuredName{Given: "Ann"}}

	m := c.ToMap(NewFieldSet(FieldGivenName, FieldFamilyName, FieldEmails))

	assert.Equal(t, "Ann", m["givenName"])
	assert.NotContains(t, m, "familyName")
	assert.NotContains(t, m, "emails")
}

func TestToMapEntries(t *testing.T) {
	c := Contact{
		ID:     "3",
		Emails: []Email{{Address: "ann@example.com", Label: "work"}},
	}

	m := c.ToMap(NewFieldSet(FieldEmails))

	entries, ok := m["emails"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "ann@example.com", entries[0]["address"])
	assert.Equal(t, "work", entries[0]["label"])
}
