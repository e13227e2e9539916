// Package memstore provides an in-memory Store used by tests and local
// development. It mirrors the query semantics of the postgres store: a single
// equality row filter, ascending sort by a column, positional projection
// access with NULL-equivalent absent values.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sentiric/sentiric-contact-service/internal/store"
)

// Row is one stored row, keyed by column.
type Row map[store.Column]string

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.Mutex
	tables  map[string][]Row
	images  map[string]map[store.ImageSize][]byte
	fail    map[string]error
	queries []store.Query

	// QueryHook, if set, is invoked at the start of every Query call. Tests
	// use it to observe and gate concurrent partition reads.
	QueryHook func(store.Query)
}

// New, boş bir bellek içi depo oluşturur.
func New() *Store {
	return &Store{
		tables: make(map[string][]Row),
		images: make(map[string]map[store.ImageSize][]byte),
		fail:   make(map[string]error),
	}
}

// Insert appends rows to a source in insertion order.
func (s *Store) Insert(source string, rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[source] = append(s.tables[source], rows...)
}

// SetImage stores image bytes for a contact.
func (s *Store) SetImage(contactID string, size store.ImageSize, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.images[contactID] == nil {
		s.images[contactID] = make(map[store.ImageSize][]byte)
	}
	s.images[contactID][size] = data
}

// FailWith makes every subsequent query against source fail with err.
func (s *Store) FailWith(source string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[source] = err
}

// Queries returns a copy of every query executed so far.
func (s *Store) Queries() []store.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.Query, len(s.queries))
	copy(out, s.queries)
	return out
}

// Query implements store.Store.
func (s *Store) Query(ctx context.Context, q store.Query) (store.Cursor, error) {
	if hook := s.QueryHook; hook != nil {
		hook(q)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.queries = append(s.queries, q)
	failErr := s.fail[q.Source]
	rows := append([]Row(nil), s.tables[q.Source]...)
	s.mu.Unlock()

	if failErr != nil {
		return nil, store.NewErrStoreAccess(q.Source, failErr)
	}

	if q.Filter != "" {
		col, argPos, err := parseFilter(q.Filter)
		if err != nil {
			return nil, store.NewErrStoreAccess(q.Source, err)
		}
		if argPos < 1 || argPos > len(q.FilterArgs) {
			return nil, store.NewErrStoreAccess(q.Source, fmt.Errorf("filter argument $%d out of range", argPos))
		}
		want := fmt.Sprint(q.FilterArgs[argPos-1])
		var kept []Row
		for _, r := range rows {
			if r[col] == want {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	if q.OrderBy != "" {
		col := store.Column(strings.Fields(q.OrderBy)[0])
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i][col] < rows[j][col]
		})
	}

	return &cursor{rows: rows, proj: q.Projection}, nil
}

// Image implements store.Store.
func (s *Store) Image(ctx context.Context, contactID string, size store.ImageSize) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail[store.SourceImages]; err != nil {
		return nil, store.NewErrStoreAccess(store.SourceImages, err)
	}
	return s.images[contactID][size], nil
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// parseFilter accepts the single supported filter shape "<column> = $N".
func parseFilter(filter string) (store.Column, int, error) {
	parts := strings.SplitN(filter, " = $", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("unsupported filter: %q", filter)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("unsupported filter: %q", filter)
	}
	return store.Column(strings.TrimSpace(parts[0])), n, nil
}

type cursor struct {
	rows []Row
	proj []store.Column
	idx  int
}

func (c *cursor) Next() bool {
	if c.idx >= len(c.rows) {
		return false
	}
	c.idx++
	return c.idx <= len(c.rows)
}

func (c *cursor) row() Row {
	return c.rows[c.idx-1]
}

func (c *cursor) Text(pos int) string {
	if pos < 0 || pos >= len(c.proj) {
		return ""
	}
	return c.row()[c.proj[pos]]
}

func (c *cursor) Int(pos int) int64 {
	v, err := strconv.ParseInt(c.Text(pos), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (c *cursor) Err() error { return nil }

func (c *cursor) Close() error { return nil }
