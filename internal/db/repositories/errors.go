package repositories

import (
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// pgUndefinedColumn is the Postgres error code for a write that names a
// column the table does not have (schema drift between app and store).
const pgUndefinedColumn = "42703"

var undefinedColumnRe = regexp.MustCompile(`column "([^"]+)"`)

// UndefinedColumn extracts the offending column name from an
// undefined-column store error. Gorm's postgres driver surfaces these as
// *pgconn.PgError, the sqlx connections as *pq.Error; both are matched.
// Empty when the error is anything else.
func UndefinedColumn(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedColumn {
		if m := undefinedColumnRe.FindStringSubmatch(pgErr.Message); m != nil {
			return m[1]
		}
		return pgErr.ColumnName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUndefinedColumn {
		if m := undefinedColumnRe.FindStringSubmatch(pqErr.Message); m != nil {
			return m[1]
		}
		return pqErr.Column
	}
	return ""
}
