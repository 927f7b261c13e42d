package credentials

import (
	"context"
	"strings"

	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/store"
)

// Config selects and sizes the backend
type Config struct {
	Backend    string
	MemorySize int
}

// Open returns the configured backend. pg and sqlite need the matching
// seam opened on st; their table is created on open
func Open(ctx context.Context, cfg Config, st *store.Store) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendMemory:
		return NewMemory(cfg.MemorySize)
	case BackendPG:
		if st == nil || st.PG == nil {
			return nil, perr.Validationf("credential backend pg needs SERVICE_PGSQL_DBURL")
		}
		return migrated(ctx, NewSQL(st.PG, Postgres))
	case BackendSQLite:
		if st == nil || st.SQLite == nil {
			return nil, perr.Validationf("credential backend sqlite is not open")
		}
		return migrated(ctx, NewSQL(st.SQLite, SQLite))
	}
	return nil, perr.WithField(perr.InvalidArgf("unknown credential backend %q", cfg.Backend), "backend")
}

func migrated(ctx context.Context, s *SQL) (Store, error) {
	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
