// Package postgres implements catalog.Catalog for PostgreSQL using pgx v5.
// Column names come from information_schema.columns in ordinal order.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"schemagen/internal/catalog"
)

// columnsSQL falls back to current_schema() when no schema is given, which
// honours the connection's search_path.
const columnsSQL = `SELECT column_name
FROM information_schema.columns
WHERE table_schema = COALESCE(NULLIF($1, ''), current_schema())
  AND table_name = $2
ORDER BY ordinal_position`

// querier is the subset of *pgxpool.Pool used here.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Catalog is a PostgreSQL-backed catalog.Catalog.
type Catalog struct {
	q       querier
	closeFn func()
}

var _ catalog.Catalog = (*Catalog)(nil)

// New connects to dsn and verifies the connection with a bounded ping.
func New(ctx context.Context, dsn string) (*Catalog, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres: DSN must not be empty")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: pgxpool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: connect: %w", describe(err))
	}
	return &Catalog{q: pool, closeFn: pool.Close}, nil
}

// Columns returns the column names of table in ordinal order.
func (c *Catalog) Columns(ctx context.Context, table string) ([]string, error) {
	schema, name := catalog.SplitTable(table)
	if name == "" {
		return nil, fmt.Errorf("postgres: table name must not be empty")
	}

	rows, err := c.q.Query(ctx, columnsSQL, schema, name)
	if err != nil {
		return nil, fmt.Errorf("postgres: query columns of %q: %w", table, describe(err))
	}
	cols, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: read columns of %q: %w", table, describe(err))
	}
	if len(cols) == 0 {
		return nil, catalog.NotFound("postgres", table)
	}
	return cols, nil
}

// Close releases the connection pool.
func (c *Catalog) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// describe appends the server's detail line, which pgconn.PgError.Error
// leaves out, to a server error.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		return fmt.Errorf("%w (detail: %s)", err, pgErr.Detail)
	}
	return err
}
