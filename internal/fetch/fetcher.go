package fetch

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/contact"
	"github.com/sentiric/sentiric-contact-service/internal/store"
	"golang.org/x/sync/errgroup"
)

// Fetcher coordinates the concurrent partition reads and holds the last
// published result set.
//
// FetchAll dispatches one task per required partition, joins on all of them,
// merges the fragments by contact id in a single pass and swaps the stored
// result set atomically. Page and Clear only ever observe the previously
// published set or the newly merged one; a half-finished fetch is never
// visible. Concurrent FetchAll calls are not coordinated against each other.
type Fetcher struct {
	reader *Reader
	log    zerolog.Logger

	mu       sync.RWMutex
	contacts []contact.Contact
	fields   contact.FieldSet
}

// NewFetcher, Fetcher'ı başlatır.
func NewFetcher(st store.Store, log zerolog.Logger) *Fetcher {
	return &Fetcher{reader: NewReader(st, log), log: log}
}

// FetchAll reads every partition required by fields, merges the fragments
// into a new result set, publishes it and returns its size. On any partition
// failure the first observed error is returned and nothing is published.
func (f *Fetcher) FetchAll(ctx context.Context, fields contact.FieldSet) (int, error) {
	parts := contact.PartitionsFor(fields)
	if len(parts) == 0 {
		f.mu.Lock()
		f.contacts = nil
		f.fields = fields
		f.mu.Unlock()
		return 0, nil
	}

	// Disjoint per-partition slots; each task writes only its own index, so
	// the accumulation needs no locking.
	slots := make([]map[string]contact.Contact, len(parts))

	var g errgroup.Group
	g.SetLimit(len(parts) + 1)
	for i, p := range parts {
		g.Go(func() error {
			frags, err := f.reader.Read(ctx, p, fields)
			if err != nil {
				return &ErrPartitionQuery{Partition: p, cause: err}
			}
			slots[i] = frags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f.log.Error().Err(err).Int("partitions", len(parts)).Msg("Kontak getirme başarısız, kısmi sonuç yayınlanmadı")
		return 0, err
	}

	merged := make(map[string]contact.Contact)
	var order []string
	for _, frags := range slots {
		for id, frag := range frags {
			if cur, ok := merged[id]; ok {
				merged[id] = contact.Merge(cur, frag)
			} else {
				merged[id] = frag
				order = append(order, id)
			}
		}
	}

	list := make([]contact.Contact, 0, len(order))
	for _, id := range order {
		list = append(list, merged[id])
	}

	f.mu.Lock()
	f.contacts = list
	f.fields = fields
	f.mu.Unlock()

	f.log.Debug().Int("partitions", len(parts)).Int("contacts", len(list)).Msg("Kontaklar birleştirildi")
	return len(list), nil
}

// Page returns the contacts in [from, to) of the last published result set,
// in the order the merge materialized them, together with the field set the
// result set was fetched with. Bounds outside [0, size] or an inverted range
// fail with *ErrRange.
func (f *Fetcher) Page(from, to int) ([]contact.Contact, contact.FieldSet, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	size := len(f.contacts)
	if from < 0 || to < 0 || from > size || to > size || from > to {
		return nil, nil, &ErrRange{From: from, To: to, Size: size}
	}
	out := make([]contact.Contact, to-from)
	copy(out, f.contacts[from:to])
	return out, f.fields, nil
}

// Size returns the size of the last published result set.
func (f *Fetcher) Size() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.contacts)
}

// Clear discards the stored result set. Subsequent Page calls on the empty
// set return empty results until the next FetchAll.
func (f *Fetcher) Clear() {
	f.mu.Lock()
	f.contacts = nil
	f.fields = nil
	f.mu.Unlock()
}
