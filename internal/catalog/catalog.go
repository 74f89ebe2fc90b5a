// Package catalog looks up the authoritative column list of an existing
// table. Backends register a Factory under a kind ("postgres", "sqlite", ...)
// from their init functions; import internal/catalog/all to enable them all.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"schemagen/internal/ident"
)

// ErrTableNotFound is returned when the table is absent or has no columns.
var ErrTableNotFound = errors.New("catalog: table not found")

// Catalog returns table metadata from a live database.
type Catalog interface {
	// Columns returns the column names of table in ordinal order. table may
	// be schema-qualified ("schema.table"); when it is not, the backend's
	// current schema is used. Zero columns yields ErrTableNotFound.
	Columns(ctx context.Context, table string) ([]string, error)
	Close()
}

// Config selects and configures a backend.
type Config struct {
	Kind string
	DSN  string
}

// Factory opens a Catalog for one backend kind.
type Factory func(ctx context.Context, cfg Config) (Catalog, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes a backend available under kind.
//
// Panics if kind is empty, f is nil, or kind is already registered.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if kind == "" {
		panic("catalog: Register called with empty kind")
	}
	if f == nil {
		panic("catalog: Register called with nil factory")
	}
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("catalog: factory already registered for kind=%q", kind))
	}
	factories[kind] = f
}

// Open constructs a Catalog using the registered backend factory.
func Open(ctx context.Context, cfg Config) (Catalog, error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))
	if kind == "" {
		return nil, fmt.Errorf("catalog: missing kind")
	}

	mu.RLock()
	f := factories[kind]
	mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("catalog: unsupported kind=%q (registered: %s)", kind, strings.Join(Kinds(), ", "))
	}
	return f(ctx, cfg)
}

// Kinds lists registered backend kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SplitTable splits "schema.table" into its parts. An unqualified name
// returns an empty schema. Quoted parts are unquoted, so `"Censo"."Escolas"`
// keeps its case.
func SplitTable(fqn string) (schema, table string) {
	parts := ident.SplitQualified(fqn)
	if len(parts) == 0 {
		return "", ""
	}
	return strings.Join(parts[:len(parts)-1], "."), parts[len(parts)-1]
}

// NotFound builds the ErrTableNotFound error for table.
func NotFound(kind, table string) error {
	return fmt.Errorf("%w: %s table %q has no columns in the current schema", ErrTableNotFound, kind, table)
}

// Queryer is the database/sql subset used by the sql-backed catalogs.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// QueryNames runs query and collects the first column of every row as a
// string.
func QueryNames(ctx context.Context, db Queryer, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
