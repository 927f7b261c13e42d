// Package module mounts the connector under the versioned API
package module

import (
	"umamiconnector/internal/core/report"
	"umamiconnector/internal/modkit"
	"umamiconnector/internal/modkit/httpkit"
	"umamiconnector/internal/modkit/swaggerkit"
	connhttp "umamiconnector/internal/services/connector/http"
	"umamiconnector/internal/services/connector/domain"
	connsvc "umamiconnector/internal/services/connector/service"
)

// Module is the connector module
// its Ports are the domain.ServicePort backing the routes
type Module struct {
	modkit.Base
	svc  *connsvc.Svc
	auth httpkit.AuthPort
}

// New builds the connector from deps
// reads USER_HEADER and LEGACY_PAGEVIEWS_SCHEMA from deps.Cfg;
// WithPorts may pass an httpkit.AuthPort replacing the header port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if deps.Umami == nil {
		panic("connector module requires an Umami client")
	}
	m := &Module{Base: modkit.NewBase("connector", "/connector", opts...)}

	catalog := report.Catalog{LegacyPageViews: deps.Cfg.MayBool("LEGACY_PAGEVIEWS_SCHEMA", false)}
	log := deps.Log.With().Str("component", "connector").Logger()
	m.svc = connsvc.New(deps.Umami, deps.Tokens, connsvc.WithCatalog(catalog), connsvc.WithLogger(log))

	header := deps.Cfg.MayString("USER_HEADER", httpkit.DefaultUserHeader)
	m.auth = httpkit.NewHeaderPort(header, nil)
	if p, ok := m.Injected().(httpkit.AuthPort); ok && p != nil {
		m.auth = p
	}
	if m.Swagger() && header != httpkit.DefaultUserHeader {
		swaggerkit.Register(swaggerkit.RenameHeader(httpkit.DefaultUserHeader, header))
	}
	return m
}

// Ports returns the connector facade
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }

// MountRoutes registers the connector routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sub httpkit.Router) { connhttp.Register(sub, m.svc, m.auth) })
}
