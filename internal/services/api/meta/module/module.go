// Package module mounts the meta endpoints
package module

import (
	"time"

	"umamiconnector/internal/modkit"
	"umamiconnector/internal/modkit/httpkit"
	metahttp "umamiconnector/internal/services/api/meta/http"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "umami-connector-api"

// Module serves health, readiness, version and uptime
type Module struct {
	modkit.Base
	deps      modkit.Deps
	startedAt time.Time
}

// New builds the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		Base:      modkit.NewBase("meta", "/meta", opts...),
		deps:      deps,
		startedAt: time.Now(),
	}
}

// Ports is nil, meta offers nothing to other modules
func (m *Module) Ports() any { return nil }

// MountRoutes registers the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sub httpkit.Router) {
		metahttp.Register(sub, metahttp.Deps{
			ServiceName:  ServiceName,
			StartedAt:    m.startedAt,
			Dependencies: dependencies(m.deps),
		})
	})
}

// dependencies lists the probe targets
// unset seams stay untyped nil so they report as skipped
func dependencies(d modkit.Deps) []metahttp.Dependency {
	umami := metahttp.Dependency{Name: "umami"}
	if d.Umami != nil {
		umami.Target = d.Umami
	}
	out := []metahttp.Dependency{umami}
	if d.Store == nil {
		return out
	}
	pg := metahttp.Dependency{Name: "pg"}
	if d.Store.PG != nil {
		pg.Target = d.Store.PG
	}
	lite := metahttp.Dependency{Name: "sqlite"}
	if d.Store.SQLite != nil {
		lite.Target = d.Store.SQLite
	}
	return append(out, pg, lite)
}
