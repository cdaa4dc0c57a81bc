// Package repository implements the service layer's store ports on
// PostgreSQL.
//
// Lookups report absence with found=false instead of an error. Search
// keys arrive as json field names and are mapped onto columns through
// fixed tables, so no caller supplied text ever reaches the SQL.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// column is a searchable column and whether its values are integers.
type column struct {
	name    string
	integer bool
}

// ErrUnsupportedField is returned for a search key with no column.
var ErrUnsupportedField = errors.New("unsupported search field")

// lookupArg resolves field through columns and converts value to the
// column's type. ok is false when value cannot match any row.
func lookupArg(columns map[string]column, field, value string) (col string, arg any, ok bool, err error) {
	c, known := columns[field]
	if !known {
		return "", nil, false, fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}

	if !c.integer {
		return c.name, value, true, nil
	}

	n, convErr := strconv.Atoi(value)
	if convErr != nil {
		return c.name, nil, false, nil
	}
	return c.name, n, true, nil
}

// collectOne scans a single row, mapping pgx.ErrNoRows to found=false.
func collectOne[T any](rows pgx.Rows, scan pgx.RowToFunc[T]) (T, bool, error) {
	item, err := pgx.CollectExactlyOneRow(rows, scan)
	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return item, true, nil
}
