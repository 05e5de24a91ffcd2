package listing

import (
	"context"
	"database/sql"
)

// Querier is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Page is one page of typed rows plus its navigation.
type Page[T any] struct {
	Items []T `json:"items"`
	Meta  Meta `json:"meta"`
}

// Fetch counts the filtered rows and loads the requested page, scanning each
// row with scan. Pages past the end come back empty with the real total.
func Fetch[T any](ctx context.Context, q Querier, spec Spec, f Filters, req Request, scan func(*sql.Rows) (T, error)) (Page[T], error) {
	countStmt, dataStmt, err := Build(spec, f, req)
	if err != nil {
		return Page[T]{}, err
	}

	var total int64
	if err := q.QueryRowContext(ctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
		return Page[T]{}, err
	}

	items := make([]T, 0, req.PerPage)
	// the offset is only meaningful, and only fits an int, for pages in range
	if req.page() <= TotalPages(total, req.PerPage) {
		rows, err := q.QueryContext(ctx, dataStmt.SQL, dataStmt.Args...)
		if err != nil {
			return Page[T]{}, err
		}
		defer rows.Close()

		for rows.Next() {
			it, err := scan(rows)
			if err != nil {
				return Page[T]{}, err
			}
			items = append(items, it)
		}
		if err := rows.Err(); err != nil {
			return Page[T]{}, err
		}
	}

	return Page[T]{Items: items, Meta: BuildMeta(total, req)}, nil
}
