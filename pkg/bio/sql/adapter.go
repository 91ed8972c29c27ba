/*
Package sql provides functions to read id3 tables from SQL databases
and write them onto them through an Adapter.
*/
package sql

import (
	"context"
	"database/sql"
)

/*
Adapter is an interface providing the methods
needed to read and write tables on a database backend.
*/
type Adapter interface {
	// Identifier takes a table or column name and returns it quoted to be
	// used in statements, or an error if it cannot be used as such.
	Identifier(string) (string, error)
	// Placeholder takes the 1-based position of a statement parameter and
	// returns the placeholder for it.
	Placeholder(int) string

	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Close() error
}
