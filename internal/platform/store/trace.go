package store

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// queryLog prints one line per statement when LogSQL is on
// it logs at debug regardless of the root level, bound values are never printed
type queryLog struct {
	log  zerolog.Logger
	slow time.Duration
}

func newQueryLog(root zerolog.Logger, component string, slowMs int) *queryLog {
	return &queryLog{
		log:  root.Level(zerolog.DebugLevel).With().Str("component", component).Logger(),
		slow: time.Duration(slowMs) * time.Millisecond,
	}
}

func (q *queryLog) emit(sql string, args int, elapsed time.Duration, err error) {
	if q == nil {
		return
	}
	slow := q.slow > 0 && elapsed >= q.slow
	evt := q.log.Info()
	if slow {
		evt = q.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Bool("slow", slow).
		Str("sql", compact(sql)).
		Int("args", args).
		Err(err).
		Msg("sql query")
}

// compact folds whitespace runs so multi line statements log on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type traceKey struct{}

type traceStart struct {
	sql  string
	args int
	at   time.Time
}

// pgxTracer adapts queryLog to the pgx tracing hooks
type pgxTracer struct{ q *queryLog }

func (t pgxTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, args: len(data.Args), at: time.Now()})
}

func (t pgxTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	t.q.emit(st.sql, st.args, time.Since(st.at), data.Err)
}
