// Package sqlite implements catalog.Catalog for SQLite using the pure-Go
// modernc.org/sqlite driver. Columns come from pragma_table_info in cid order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"schemagen/internal/catalog"
)

const columnsSQL = `SELECT name FROM pragma_table_info(?1, ?2) ORDER BY cid`

// Catalog is a SQLite-backed catalog.Catalog.
type Catalog struct {
	db *sql.DB
}

var _ catalog.Catalog = (*Catalog)(nil)

// New opens the SQLite database at dsn. DSN is passed directly to
// database/sql; for example:
//
//	"file:censo.db?mode=ro"
//	"censo.db"
func New(ctx context.Context, dsn string) (*Catalog, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// Apply a basic ping with context to fail fast on invalid DSNs.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return &Catalog{db: db}, nil
}

// FromDB wraps an already open database handle. Close closes it.
func FromDB(db *sql.DB) *Catalog { return &Catalog{db: db} }

// Columns returns the column names of table in declaration order. A schema
// prefix selects an attached database; the default is "main".
func (c *Catalog) Columns(ctx context.Context, table string) ([]string, error) {
	schema, name := catalog.SplitTable(table)
	if name == "" {
		return nil, fmt.Errorf("sqlite: table name must not be empty")
	}
	if schema == "" {
		schema = "main"
	}

	cols, err := catalog.QueryNames(ctx, c.db, columnsSQL, name, schema)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query columns of %q: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, catalog.NotFound("sqlite", table)
	}
	return cols, nil
}

// Close closes the database handle.
func (c *Catalog) Close() { _ = c.db.Close() }

// newCatalog is a test hook that points to New by default.
var newCatalog = New

// init registers the "sqlite" backend with the factory.
func init() {
	catalog.Register("sqlite", func(ctx context.Context, cfg catalog.Config) (catalog.Catalog, error) {
		c, err := newCatalog(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
