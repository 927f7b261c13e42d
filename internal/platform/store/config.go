package store

import "time"

// Config holds per backend settings
// the connector enables at most one backend per process
type Config struct {
	// AppName is reported to postgres as application_name
	AppName string

	PG     PGConfig
	SQLite SQLiteConfig
}

// PGConfig configures the pgx pool
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// SQLiteConfig configures the embedded database
type SQLiteConfig struct {
	Enabled bool
	// Path is a file path or a modernc DSN; empty means private in-memory
	Path          string
	LogSQL        bool
	SlowQueryMs   int
	BusyTimeoutMs int // default 5000
}

func (c Config) withDefaults() Config {
	if c.PG.ConnectRetries <= 0 {
		c.PG.ConnectRetries = 20
	}
	if c.PG.PingTimeout <= 0 {
		c.PG.PingTimeout = 3 * time.Second
	}
	if c.SQLite.BusyTimeoutMs <= 0 {
		c.SQLite.BusyTimeoutMs = 5000
	}
	return c
}
