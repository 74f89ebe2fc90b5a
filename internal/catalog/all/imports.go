// Package all wires all built-in catalog backends into the catalog factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) runs the init functions of each backend, which register their
// factories with the catalog package. It makes these kinds available:
//
//   - "postgres" (schemagen/internal/catalog/postgres)
//   - "sqlite"   (schemagen/internal/catalog/sqlite)
//   - "mssql"    (schemagen/internal/catalog/mssql)
//   - "mysql"    (schemagen/internal/catalog/mysql)
//
// A binary that needs only a subset can import the backend packages directly
// instead.
package all

import (
	_ "schemagen/internal/catalog/mssql"
	_ "schemagen/internal/catalog/mysql"
	_ "schemagen/internal/catalog/postgres"
	_ "schemagen/internal/catalog/sqlite"
)
