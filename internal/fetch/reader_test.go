package fetch

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/contact"
	"github.com/sentiric/sentiric-contact-service/internal/store"
	"github.com/sentiric/sentiric-contact-service/internal/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPhonesAppendPerRow(t *testing.T) {
	st := memstore.New()
	st.Insert(store.SourcePhones,
		memstore.Row{store.ColContactID: "1", store.ColPhoneNumber: "555-0100", store.ColPhoneType: "2"},
		memstore.Row{store.ColContactID: "1", store.ColPhoneNumber: "555-0101", store.ColPhoneLabel: "Office", store.ColPhoneType: "3"},
		memstore.Row{store.ColContactID: "2", store.ColPhoneNumber: "555-0200", store.ColPhoneType: "1"},
	)
	r := NewReader(st, zerolog.Nop())

	frags, err := r.Read(context.Background(), contact.PartitionPhones, contact.NewFieldSet(contact.FieldPhoneNumbers))

	require.NoError(t, err)
	require.Len(t, frags, 2)
	require.Len(t, frags["1"].Phones, 2)
	assert.Equal(t, "mobile", frags["1"].Phones[0].Label)
	assert.Equal(t, "Office", frags["1"].Phones[1].Label)
	require.Len(t, frags["2"].Phones, 1)
	assert.Equal(t, "home", frags["2"].Phones[0].Label)
}

func TestReaderOrganizationFirstRowWins(t *testing.T) {
	st := memstore.New()
	st.Insert(store.SourceData,
		memstore.Row{store.ColContactID: "1", store.ColKind: store.KindOrganization, store.ColCompany: "Sentiric"},
		memstore.Row{store.ColContactID: "1", store.ColKind: store.KindOrganization, store.ColCompany: "Acme"},
	)
	r := NewReader(st, zerolog.Nop())

	frags, err := r.Read(context.Background(), contact.PartitionOrganization, contact.NewFieldSet(contact.FieldCompany))

	require.NoError(t, err)
	require.Len(t, frags, 1)
	require.NotNil(t, frags["1"].Organization)
	assert.Equal(t, "Sentiric", frags["1"].Organization.Company)
}

func TestReaderNamePartitionFiltersSharedTable(t *testing.T) {
	st := memstore.New()
	st.Insert(store.SourceData,
		memstore.Row{store.ColContactID: "1", store.ColKind: store.KindStructuredName, store.ColGivenName: "Ann"},
		memstore.Row{store.ColContactID: "2", store.ColKind: store.KindOrganization, store.ColCompany: "Acme"},
	)
	r := NewReader(st, zerolog.Nop())

	frags, err := r.Read(context.Background(), contact.PartitionName, contact.NewFieldSet(contact.FieldGivenName))

	require.NoError(t, err)
	require.Len(t, frags, 1)
	require.NotNil(t, frags["1"].Name)
	assert.Equal(t, "Ann", frags["1"].Name.Given)

	queries := st.Queries()
	require.Len(t, queries, 1)
	assert.Equal(t, store.SourceData, queries[0].Source)
	assert.Equal(t, "kind = $1", queries[0].Filter)
	assert.Equal(t, []any{store.KindStructuredName}, queries[0].FilterArgs)
}

func TestReaderProjectionRestrictedToRequestedFields(t *testing.T) {
	st := memstore.New()
	st.Insert(store.SourceData,
		memstore.Row{store.ColContactID: "1", store.ColKind: store.KindStructuredName, store.ColGivenName: "Ann", store.ColFamilyName: "Lee"},
	)
	r := NewReader(st, zerolog.Nop())

	frags, err := r.Read(context.Background(), contact.PartitionName, contact.NewFieldSet(contact.FieldGivenName))

	require.NoError(t, err)
	require.NotNil(t, frags["1"].Name)
	assert.Equal(t, "Ann", frags["1"].Name.Given)
	// family_name was not projected, so it resolves to absent, not an error.
	assert.Equal(t, "", frags["1"].Name.Family)

	queries := st.Queries()
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0].Projection, store.ColContactID)
	assert.Contains(t, queries[0].Projection, store.ColGivenName)
	assert.NotContains(t, queries[0].Projection, store.ColFamilyName)
	assert.NotContains(t, queries[0].Projection, store.ColMiddleName)
}

func TestReaderSortsByContactID(t *testing.T) {
	st := memstore.New()
	st.Insert(store.SourceEmails,
		memstore.Row{store.ColContactID: "2", store.ColEmailAddress: "b@example.com", store.ColEmailType: "2"},
		memstore.Row{store.ColContactID: "1", store.ColEmailAddress: "a@example.com", store.ColEmailType: "1"},
	)
	r := NewReader(st, zerolog.Nop())

	frags, err := r.Read(context.Background(), contact.PartitionEmails, contact.NewFieldSet(contact.FieldEmails))

	require.NoError(t, err)
	require.Len(t, frags, 2)

	queries := st.Queries()
	require.Len(t, queries, 1)
	assert.Equal(t, "contact_id ASC", queries[0].OrderBy)
}

func TestReaderIDOnlyFieldSet(t *testing.T) {
	st := memstore.New()
	st.Insert(store.SourceData,
		memstore.Row{store.ColContactID: "1", store.ColKind: store.KindStructuredName, store.ColGivenName: "Ann"},
	)
	r := NewReader(st, zerolog.Nop())

	frags, err := r.Read(context.Background(), contact.PartitionName, contact.NewFieldSet(contact.FieldID))

	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, "1", frags["1"].ID)
	// No name columns requested, so the fragment carries no name at all.
	assert.Nil(t, frags["1"].Name)
}
