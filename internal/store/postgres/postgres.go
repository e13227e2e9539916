// Package postgres, kontak deposunun PostgreSQL üzerindeki gerçeklemesidir.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/store"
)

// Store, tüm kontak okuma sorgularını PostgreSQL üzerinde yürüten yapıdır.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewStore, Store'u başlatır.
func NewStore(db *sql.DB, log zerolog.Logger) store.Store {
	return &Store{db: db, log: log}
}

// Query implements store.Store. Sources and columns come from the fixed
// constants in the store package, never from caller input.
func (s *Store) Query(ctx context.Context, q store.Query) (store.Cursor, error) {
	cols := make([]string, len(q.Projection))
	for i, c := range q.Projection {
		cols[i] = string(c)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.Source)
	if q.Filter != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Filter)
	}
	if q.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.OrderBy)
	}

	rows, err := s.db.QueryContext(ctx, b.String(), q.FilterArgs...)
	if err != nil {
		s.log.Error().Err(err).Str("source", q.Source).Msg("Veritabanı sorgu hatası")
		return nil, store.NewErrStoreAccess(q.Source, err)
	}
	return newRowCursor(rows, len(q.Projection)), nil
}

// Image implements store.Store.
func (s *Store) Image(ctx context.Context, contactID string, size store.ImageSize) ([]byte, error) {
	col := "thumbnail"
	if size == store.ImageFull {
		col = "full_image"
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE contact_id = $1", col, store.SourceImages)

	var data []byte
	err := s.db.QueryRowContext(ctx, query, contactID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		s.log.Error().Err(err).Str("contact_id", contactID).Msg("Kontak görseli sorgulanamadı")
		return nil, store.NewErrStoreAccess(store.SourceImages, err)
	}
	return data, nil
}

// Close implements store.Store.
func (s *Store) Close() error { return s.db.Close() }

// rowCursor adapts sql.Rows to the store.Cursor contract. Every projected
// column is scanned as a nullable string; NULL decodes to the zero value.
type rowCursor struct {
	rows *sql.Rows
	vals []sql.NullString
	dest []any
	err  error
}

func newRowCursor(rows *sql.Rows, n int) *rowCursor {
	c := &rowCursor{rows: rows, vals: make([]sql.NullString, n), dest: make([]any, n)}
	for i := range c.vals {
		c.dest[i] = &c.vals[i]
	}
	return c
}

func (c *rowCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.rows.Next() {
		return false
	}
	if err := c.rows.Scan(c.dest...); err != nil {
		c.err = err
		return false
	}
	return true
}

func (c *rowCursor) Text(pos int) string {
	if pos < 0 || pos >= len(c.vals) || !c.vals[pos].Valid {
		return ""
	}
	return c.vals[pos].String
}

func (c *rowCursor) Int(pos int) int64 {
	v, err := strconv.ParseInt(c.Text(pos), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (c *rowCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

func (c *rowCursor) Close() error { return c.rows.Close() }
