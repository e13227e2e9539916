package memstore

import (
	"context"
	"testing"

	"github.com/sentiric/sentiric-contact-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFilterAndSort(t *testing.T) {
	s := New()
	s.Insert(store.SourceData,
		Row{store.ColContactID: "2", store.ColKind: store.KindOrganization, store.ColCompany: "Acme"},
		Row{store.ColContactID: "1", store.ColKind: store.KindStructuredName, store.ColGivenName: "Ann"},
		Row{store.ColContactID: "3", store.ColKind: store.KindStructuredName, store.ColGivenName: "Cem"},
	)

	cur, err := s.Query(context.Background(), store.Query{
		Source:     store.SourceData,
		Projection: []store.Column{store.ColContactID, store.ColGivenName},
		Filter:     "kind = $1",
		FilterArgs: []any{store.KindStructuredName},
		OrderBy:    "contact_id ASC",
	})
	require.NoError(t, err)
	defer cur.Close()

	var ids, names []string
	for cur.Next() {
		ids = append(ids, cur.Text(0))
		names = append(names, cur.Text(1))
	}
	require.NoError(t, cur.Err())
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Equal(t, []string{"Ann", "Cem"}, names)
}

func TestCursorAbsentValues(t *testing.T) {
	s := New()
	s.Insert(store.SourcePhones,
		Row{store.ColContactID: "1", store.ColPhoneNumber: "555-0100"},
	)

	cur, err := s.Query(context.Background(), store.Query{
		Source:     store.SourcePhones,
		Projection: []store.Column{store.ColContactID, store.ColPhoneNumber, store.ColPhoneLabel, store.ColPhoneType},
	})
	require.NoError(t, err)
	defer cur.Close()

	require.True(t, cur.Next())
	// Columns the row does not carry decode to zero values.
	assert.Equal(t, "", cur.Text(2))
	assert.Equal(t, int64(0), cur.Int(3))
	// Positions outside the projection are absent too.
	assert.Equal(t, "", cur.Text(9))
	assert.False(t, cur.Next())
}

func TestFailWith(t *testing.T) {
	s := New()
	s.FailWith(store.SourceEmails, assert.AnError)

	_, err := s.Query(context.Background(), store.Query{Source: store.SourceEmails})

	var sa *store.ErrStoreAccess
	require.ErrorAs(t, err, &sa)
	assert.Equal(t, store.SourceEmails, sa.Source)
}

func TestImage(t *testing.T) {
	s := New()
	s.SetImage("1", store.ImageFull, []byte{1, 2, 3})

	data, err := s.Image(context.Background(), "1", store.ImageFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	data, err = s.Image(context.Background(), "1", store.ImageThumbnail)
	require.NoError(t, err)
	assert.Nil(t, data)
}
