package credentials

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Dialect renders bind placeholders for one backend
type Dialect int

const (
	// Postgres uses $1, $2
	Postgres Dialect = iota
	// SQLite uses ?
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return BackendSQLite
	}
	return BackendPG
}

// bind rewrites $n placeholders for dialects that only take ?
func (d Dialect) bind(q string) string {
	if d != SQLite {
		return q
	}
	var b strings.Builder
	for i := 0; i < len(q); i++ {
		if q[i] == '$' && i+1 < len(q) && q[i+1] >= '0' && q[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(q) && q[i+1] >= '0' && q[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS connector_credentials (
			cred_key   TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	getSQL    = `SELECT value FROM connector_credentials WHERE cred_key = $1`
	upsertSQL = `
		INSERT INTO connector_credentials (cred_key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (cred_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	deleteSQL = `DELETE FROM connector_credentials WHERE cred_key = $1`
)

// SQL stores credentials in one table through the store seam
type SQL struct {
	q       store.Querier
	dialect Dialect
}

// NewSQL wraps q; call Migrate once before use
func NewSQL(q store.Querier, d Dialect) *SQL {
	return &SQL{q: q, dialect: d}
}

// Migrate creates the credentials table when missing
func (s *SQL) Migrate(ctx context.Context) error {
	err := s.q.Exec(ctx, createTableSQL)
	return s.wrap(err, "credentials migrate failed")
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.q.QueryRow(ctx, s.dialect.bind(getSQL), key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.wrap(err, "credentials get failed")
	}
	return v, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	err := s.q.Exec(ctx, s.dialect.bind(upsertSQL), key, value)
	return s.wrap(err, "credentials set failed")
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	err := s.q.Exec(ctx, s.dialect.bind(deleteSQL), key)
	return s.wrap(err, "credentials delete failed")
}

func (s *SQL) wrap(err error, msg string) error {
	return perr.FromStore(err, msg)
}
