package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	perr "umamiconnector/internal/platform/errors"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// MemoryDSN is a private in-memory database
const MemoryDSN = ":memory:"

var sqlOpen = sql.Open

type sqlQuerier struct {
	db    *sql.DB
	trace *queryLog
}

// newSQL wraps an opened handle; a nil log disables tracing
func newSQL(db *sql.DB, log *zerolog.Logger, slowMs int) Querier {
	q := &sqlQuerier{db: db}
	if log != nil {
		q.trace = newQueryLog(*log, "sqlite", slowMs)
	}
	return q
}

// openSQLite opens and pings the embedded database
// an in-memory database is pinned to one connection so every statement sees the same data
func openSQLite(ctx context.Context, cfg SQLiteConfig, log zerolog.Logger) (Querier, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = MemoryDSN
	}
	db, err := sqlOpen("sqlite", sqliteDSN(path, cfg.BusyTimeoutMs))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "sqlite open %s failed", path)
	}
	if path == MemoryDSN || strings.Contains(path, "mode=memory") {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "sqlite ping %s failed", path)
	}

	var tl *zerolog.Logger
	if cfg.LogSQL {
		tl = &log
	}
	return newSQL(db, tl, cfg.SlowQueryMs), nil
}

// sqliteDSN carries busy_timeout as a DSN pragma; the driver runs it on every new connection
func sqliteDSN(path string, busyMs int) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(" + strconv.Itoa(busyMs) + ")"
}

func (s *sqlQuerier) Exec(ctx context.Context, q string, args ...any) error {
	start := time.Now()
	_, err := s.db.ExecContext(ctx, q, args...)
	s.trace.emit(q, len(args), time.Since(start), err)
	return err
}

func (s *sqlQuerier) QueryRow(ctx context.Context, q string, args ...any) Row {
	start := time.Now()
	row := s.db.QueryRowContext(ctx, q, args...)
	return &sqlRow{row: row, done: func(err error) { s.trace.emit(q, len(args), time.Since(start), err) }}
}

func (s *sqlQuerier) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *sqlQuerier) Close() { _ = s.db.Close() }

// sqlRow reports the statement once Scan has surfaced its error
type sqlRow struct {
	row  *sql.Row
	done func(error)
}

func (r *sqlRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	r.done(err)
	return err
}
