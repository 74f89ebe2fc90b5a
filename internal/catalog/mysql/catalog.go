// Package mysql implements catalog.Catalog for MySQL and MariaDB using
// go-sql-driver/mysql. Columns come from information_schema.COLUMNS.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"schemagen/internal/catalog"
)

// DATABASE() is the schema selected by the DSN.
const columnsSQL = `SELECT COLUMN_NAME
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = COALESCE(NULLIF(?, ''), DATABASE())
  AND TABLE_NAME = ?
ORDER BY ORDINAL_POSITION`

// Catalog is a MySQL-backed catalog.Catalog.
type Catalog struct {
	db *sql.DB
}

var _ catalog.Catalog = (*Catalog)(nil)

// New parses dsn (go-sql-driver format, e.g. "user:pass@tcp(host:3306)/db"),
// connects and pings.
func New(ctx context.Context, dsn string) (*Catalog, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: dsn: %w", err)
	}
	conn, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql: connector: %w", err)
	}
	db := sql.OpenDB(conn)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: ping: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Columns returns the column names of table in ordinal order.
func (c *Catalog) Columns(ctx context.Context, table string) ([]string, error) {
	schema, name := catalog.SplitTable(table)
	if name == "" {
		return nil, fmt.Errorf("mysql: table name must not be empty")
	}
	cols, err := catalog.QueryNames(ctx, c.db, columnsSQL, schema, name)
	if err != nil {
		return nil, fmt.Errorf("mysql: query columns of %q: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, catalog.NotFound("mysql", table)
	}
	return cols, nil
}

// Close closes the connection pool.
func (c *Catalog) Close() { _ = c.db.Close() }

// newCatalog is a test hook that points to New by default.
// Tests may replace this variable to avoid real DB connections.
var newCatalog = New

// init registers the "mysql" backend with the factory.
func init() {
	catalog.Register("mysql", func(ctx context.Context, cfg catalog.Config) (catalog.Catalog, error) {
		c, err := newCatalog(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
