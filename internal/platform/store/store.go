// Package store opens the SQL seams the credential store persists through
package store

import (
	"context"
	"errors"

	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/logger"

	"github.com/rs/zerolog"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Querier is the statement surface shared by the pgx and database/sql seams
// statements use $n placeholders, callers rewrite them for sqlite
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) error
	QueryRow(ctx context.Context, sql string, args ...any) Row
	Ping(ctx context.Context) error
	Close()
}

// Store holds the opened seams; a disabled backend stays nil
type Store struct {
	Log    logger.Logger
	PG     Querier
	SQLite Querier
}

// Option mutates Store during Open
type Option func(*Store)

// WithLogger sets the logger used for connect retries and query tracing
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}

// Open opens every enabled backend; a failure closes what was already opened
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	cfg = cfg.withDefaults()

	if cfg.PG.Enabled {
		q, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = q
	}
	if cfg.SQLite.Enabled {
		q, err := openSQLite(ctx, cfg.SQLite, s.Log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.SQLite = q
	}
	return s, nil
}

// Guard pings every open seam
func (s *Store) Guard(ctx context.Context) error {
	var errs []error
	for name, q := range s.seams() {
		if err := q.Ping(ctx); err != nil {
			errs = append(errs, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s ping failed", name))
		}
	}
	return errors.Join(errs...)
}

// Close releases every open seam; safe on a nil or empty Store
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	for _, q := range s.seams() {
		q.Close()
	}
	s.PG, s.SQLite = nil, nil
	return nil
}

func (s *Store) seams() map[string]Querier {
	out := map[string]Querier{}
	if s.PG != nil {
		out["pg"] = s.PG
	}
	if s.SQLite != nil {
		out["sqlite"] = s.SQLite
	}
	return out
}
