package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// page runs a COUNT query followed by a LIMIT/OFFSET query and scans every
// row with scan.  The returned slice is never nil.
func page[T any](ctx context.Context, db *sql.DB, countSQL, listSQL string, args []any, q model.PageQuery, scan func(scanner) (T, error)) ([]T, int64, error) {
	var total int64
	if err := db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, wrapErr(err)
	}
	listArgs := append(append([]any{}, args...), q.Limit, q.Offset())
	items, err := list(ctx, db, listSQL, listArgs, scan)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// list runs a query and scans every row.  The returned slice is never nil.
func list[T any](ctx context.Context, db *sql.DB, query string, args []any, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

// affected maps a zero row count to ErrNotFound.
func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// likePattern builds a case-insensitive substring pattern, escaping LIKE
// wildcards in the user input.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(s)) + "%"
}
