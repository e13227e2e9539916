// Package fetch, kontak partisyonlarının eşzamanlı okunmasını ve kimliğe göre
// birleştirilmesini yürütür.
package fetch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/contact"
	"github.com/sentiric/sentiric-contact-service/internal/store"
)

// Reader reads one partition and produces partial contact fragments keyed by
// contact id.
type Reader struct {
	store store.Store
	log   zerolog.Logger
}

// NewReader, Reader'ı başlatır.
func NewReader(st store.Store, log zerolog.Logger) *Reader {
	return &Reader{store: st, log: log}
}

// Read queries partition p for the requested fields and returns the
// resulting fragments keyed by contact id. Only the columns required by the
// requested fields are projected and decoded; everything else stays absent.
func (r *Reader) Read(ctx context.Context, p contact.Partition, fields contact.FieldSet) (map[string]contact.Contact, error) {
	proj := []store.Column{store.ColContactID}
	pos := map[store.Column]int{store.ColContactID: 0}
	for _, f := range contact.Fields {
		if !fields.Has(f) || contact.PartitionOf(f) != p {
			continue
		}
		for _, col := range contact.Columns(f) {
			if _, ok := pos[col]; !ok {
				pos[col] = len(proj)
				proj = append(proj, col)
			}
		}
	}

	q := store.Query{
		Projection: proj,
		OrderBy:    string(store.ColContactID) + " ASC",
	}
	switch p {
	case contact.PartitionPhones:
		q.Source = store.SourcePhones
	case contact.PartitionEmails:
		q.Source = store.SourceEmails
	case contact.PartitionName:
		// Shared multi-purpose table; only the structured-name rows belong
		// to this partition.
		q.Source = store.SourceData
		q.Filter = string(store.ColKind) + " = $1"
		q.FilterArgs = []any{store.KindStructuredName}
	case contact.PartitionOrganization:
		q.Source = store.SourceData
		q.Filter = string(store.ColKind) + " = $1"
		q.FilterArgs = []any{store.KindOrganization}
	}

	cur, err := r.store.Query(ctx, q)
	if err != nil {
		r.log.Error().Err(err).Str("partition", p.String()).Msg("Partisyon sorgusu başarısız")
		return nil, err
	}
	defer cur.Close()

	// Column lookups by projection position; an unprojected column resolves
	// to an absent value and is never decoded.
	text := func(col store.Column) string {
		if i, ok := pos[col]; ok {
			return cur.Text(i)
		}
		return ""
	}
	intv := func(col store.Column) int64 {
		if i, ok := pos[col]; ok {
			return cur.Int(i)
		}
		return 0
	}

	out := make(map[string]contact.Contact)
	for cur.Next() {
		id := cur.Text(0)
		if id == "" {
			continue
		}

		switch p {
		case contact.PartitionPhones:
			frag, ok := out[id]
			if !ok {
				frag = contact.Contact{ID: id}
			}
			frag.Phones = append(frag.Phones, contact.Phone{
				Number: text(store.ColPhoneNumber),
				Label:  contact.ResolveLabel(text(store.ColPhoneLabel), intv(store.ColPhoneType), contact.PhoneLabel),
			})
			out[id] = frag

		case contact.PartitionEmails:
			frag, ok := out[id]
			if !ok {
				frag = contact.Contact{ID: id}
			}
			frag.Emails = append(frag.Emails, contact.Email{
				Address: text(store.ColEmailAddress),
				Label:   contact.ResolveLabel(text(store.ColEmailLabel), intv(store.ColEmailType), contact.EmailLabel),
			})
			out[id] = frag

		case contact.PartitionName:
			// One structured name per contact; the first row wins.
			if _, ok := out[id]; ok {
				continue
			}
			frag := contact.Contact{ID: id}
			if hasAny(pos, store.ColGivenName, store.ColMiddleName, store.ColFamilyName) {
				frag.Name = &contact.StructuredName{
					Given:  text(store.ColGivenName),
					Middle: text(store.ColMiddleName),
					Family: text(store.ColFamilyName),
				}
			}
			out[id] = frag

		case contact.PartitionOrganization:
			if _, ok := out[id]; ok {
				continue
			}
			frag := contact.Contact{ID: id}
			if hasAny(pos, store.ColCompany, store.ColJobTitle) {
				frag.Organization = &contact.Organization{
					Company: text(store.ColCompany),
					Title:   text(store.ColJobTitle),
				}
			}
			out[id] = frag
		}
	}
	if err := cur.Err(); err != nil {
		r.log.Error().Err(err).Str("partition", p.String()).Msg("Partisyon satırları okunamadı")
		return nil, err
	}
	return out, nil
}

func hasAny(pos map[store.Column]int, cols ...store.Column) bool {
	for _, col := range cols {
		if _, ok := pos[col]; ok {
			return true
		}
	}
	return false
}
