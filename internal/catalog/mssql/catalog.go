// Package mssql implements catalog.Catalog for Microsoft SQL Server using
// go-mssqldb. Columns come from INFORMATION_SCHEMA.COLUMNS.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/microsoft/go-mssqldb" // registers the "sqlserver" driver
	"github.com/microsoft/go-mssqldb/msdsn"

	"schemagen/internal/catalog"
)

// SCHEMA_NAME() is the caller's default schema, usually dbo.
const columnsSQL = `SELECT COLUMN_NAME
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = COALESCE(NULLIF(@p1, ''), SCHEMA_NAME())
  AND TABLE_NAME = @p2
ORDER BY ORDINAL_POSITION`

// Catalog is an MSSQL-backed catalog.Catalog.
type Catalog struct {
	db *sql.DB
}

var _ catalog.Catalog = (*Catalog)(nil)

// New validates dsn, connects and pings.
func New(ctx context.Context, dsn string) (*Catalog, error) {
	// Validate DSN early to fail fast on obvious mistakes.
	if _, err := msdsn.Parse(dsn); err != nil {
		return nil, fmt.Errorf("mssql: dsn: %w", err)
	}
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("mssql: open: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mssql: ping: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Columns returns the column names of table in ordinal order.
func (c *Catalog) Columns(ctx context.Context, table string) ([]string, error) {
	schema, name := catalog.SplitTable(table)
	if name == "" {
		return nil, fmt.Errorf("mssql: table name must not be empty")
	}
	cols, err := catalog.QueryNames(ctx, c.db, columnsSQL, schema, name)
	if err != nil {
		return nil, fmt.Errorf("mssql: query columns of %q: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, catalog.NotFound("mssql", table)
	}
	return cols, nil
}

// Close closes the connection pool.
func (c *Catalog) Close() { _ = c.db.Close() }

// newCatalog is a test hook that points to New by default.
// Tests may replace this variable to avoid real DB connections.
var newCatalog = New

// init registers the "mssql" backend with the factory.
func init() {
	catalog.Register("mssql", func(ctx context.Context, cfg catalog.Config) (catalog.Catalog, error) {
		c, err := newCatalog(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
