package store

import (
	"context"
	"time"

	perr "umamiconnector/internal/platform/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var newPool = pgxpool.NewWithConfig

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

type pgxQuerier struct {
	pool *pgxpool.Pool
}

// openPG builds the pool and waits for postgres to answer a ping
func openPG(ctx context.Context, cfg Config, log zerolog.Logger) (Querier, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.PG.URL)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "invalid postgres url")
	}
	if cfg.PG.MaxConns > 0 {
		pcfg.MaxConns = cfg.PG.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.PG.LogSQL {
		pcfg.ConnConfig.Tracer = pgxTracer{q: newQueryLog(log, "pg", cfg.PG.SlowQueryMs)}
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "postgres pool failed")
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < cfg.PG.ConnectRetries; i++ {
		pctx, cancel := context.WithTimeout(ctx, cfg.PG.PingTimeout)
		lastErr = pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return &pgxQuerier{pool: pool}, nil
		}
		if i == cfg.PG.ConnectRetries-1 {
			break
		}
		log.Warn().Err(lastErr).Int("attempt", i+1).Dur("retry_in", backoff).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "postgres connect cancelled")
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	pool.Close()
	return nil, perr.Wrapf(lastErr, perr.ErrorCodeUnavailable, "postgres ping failed after %d attempts", cfg.PG.ConnectRetries)
}

func (p *pgxQuerier) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := p.pool.Exec(ctx, sql, args...)
	return err
}

func (p *pgxQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return p.pool.QueryRow(ctx, sql, args...)
}

func (p *pgxQuerier) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

func (p *pgxQuerier) Close() { p.pool.Close() }
