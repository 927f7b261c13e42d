// @title         Umami Connector API
// @version       0.1.0
// @description   Report connector endpoints backed by an Umami instance

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/platform/config"
	"umamiconnector/internal/platform/logger"
	phttp "umamiconnector/internal/platform/net/http"
	"umamiconnector/internal/platform/store"

	"umamiconnector/internal/services/api"
)

func main() {
	// .env files first so every config view below sees them
	loaded, envErr := config.LoadEnv(config.DefaultEnvFiles...)
	logger.Init(logger.FromEnv())
	l := logger.Get()
	if envErr != nil {
		l.Panic().Err(envErr).Msg("env file load failed")
	}
	if len(loaded) > 0 {
		l.Info().Strs("files", loaded).Msg("env files loaded")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	umamiCfg := root.Prefix("SERVICE_UMAMI_")
	credCfg := root.Prefix("SERVICE_CREDSTORE_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	liteCfg := root.Prefix("SERVICE_SQLITE_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	up, err := umami.NewClient(umami.Options{
		Endpoint:  umamiCfg.MustURL("ENDPOINT").String(),
		UserAgent: umamiCfg.MayString("USER_AGENT", ""),
		Timeout:   umamiCfg.MayDuration("TIMEOUT", 10*time.Second),
	})
	if err != nil {
		l.Panic().Err(err).Msg("umami client config invalid")
	}

	backend := credCfg.MayEnum("BACKEND", credentials.BackendMemory,
		credentials.BackendMemory, credentials.BackendPG, credentials.BackendSQLite)

	// only the seam the credential backend needs is opened
	st, err := store.Open(ctx, store.Config{
		AppName: "umami-connector",
		PG: store.PGConfig{
			Enabled:     backend == credentials.BackendPG,
			URL:         pgCfg.MayString("DBURL", ""),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		SQLite: store.SQLiteConfig{
			Enabled: backend == credentials.BackendSQLite,
			Path:    liteCfg.MayString("PATH", "umami-connector.db"),
			LogSQL:  liteCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	tokens, err := credentials.Open(ctx, credentials.Config{
		Backend:    backend,
		MemorySize: credCfg.MayInt("SIZE", 4096),
	}, st)
	if err != nil {
		l.Panic().Err(err).Str("backend", backend).Msg("credential store open failed")
	}
	l.Info().Str("backend", backend).Str("umami", up.Endpoint()).Msg("connector ready")

	// reads CORE_API_API_PORT
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Umami:          up,
			Tokens:         tokens,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// serves until SIGINT or SIGTERM, then drains for CORE_API_SHUTDOWN_GRACE
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server stopped")
}
