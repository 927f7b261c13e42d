// Package api assembles the versioned HTTP API from its modules
//
// @title Umami Connector API
// @version 1.0.0
// @description Host facing connector over a self-hosted Umami instance
// @BasePath /api/v1
package api

//go:generate swag init --v3.1 -g api.go -d .,./meta/http,../connector/http,../connector/domain,../../core/report,../../core/version -o ./docs --ot go

import (
	"time"

	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/modkit"
	"umamiconnector/internal/modkit/httpkit"
	"umamiconnector/internal/modkit/swaggerkit"
	"umamiconnector/internal/platform/config"
	"umamiconnector/internal/platform/logger"
	phttp "umamiconnector/internal/platform/net/http"
	"umamiconnector/internal/platform/net/middleware"
	"umamiconnector/internal/platform/store"

	metamod "umamiconnector/internal/services/api/meta/module"
	connectormod "umamiconnector/internal/services/connector/module"
)

// Options are what Mount needs from main
type Options struct {
	// Config is the CORE_API_ view
	Config         config.Conf
	Store          *store.Store
	Umami          *umami.Client
	Tokens         credentials.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount registers everything on r, which must not have routes yet
//
//	/health             load balancer heartbeat
//	/api/v1/meta/*      health, readiness, version
//	/api/v1/connector/* the connector
//	/api/docs/*         swagger UI when enabled
//	/debug/pprof/*      profiler when enabled
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Store:  opt.Store,
		Umami:  opt.Umami,
		Tokens: opt.Tokens,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	r.Use(middleware.Heartbeat("/health"))

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithSwagger(opt.EnableSwagger)),
		connectormod.New(deps, modkit.WithSwagger(opt.EnableSwagger)),
	}

	stack := httpkit.Stack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		UserHeader:  opt.Config.MayString("USER_HEADER", httpkit.DefaultUserHeader),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	})
	httpkit.MountAPI(r, "v1", stack, func(api httpkit.Router) {
		for _, m := range mods {
			modkit.RegisterPorts(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}
