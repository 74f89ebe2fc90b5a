package postgres

import (
	"context"

	"schemagen/internal/catalog"
)

// newCatalog is a test hook that points to New by default.
// Tests may replace this variable to avoid real DB connections.
var newCatalog = New

// init registers the "postgres" backend with the factory.
func init() {
	catalog.Register("postgres", func(ctx context.Context, cfg catalog.Config) (catalog.Catalog, error) {
		c, err := newCatalog(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
