package errors

import (
	"context"
	"database/sql"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes that mean the database cannot serve us right now
// 25006 read_only_sql_transaction, 57P01 admin_shutdown, 57P03 cannot_connect_now
var unavailableStates = map[string]bool{"25006": true, "57P01": true, "57P03": true}

// SQLState returns the Postgres SQLSTATE behind err, if any
func SQLState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// FromStore wraps a credential store failure with msg
// a database that cannot answer maps to Unavailable, everything else to DB
func FromStore(err error, msg string) error {
	if err == nil {
		return nil
	}
	if state, ok := SQLState(err); ok && unavailableStates[state] {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	if stderrs.Is(err, context.DeadlineExceeded) || stderrs.Is(err, sql.ErrConnDone) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
