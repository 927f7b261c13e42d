// Package modkit composes API modules from shared deps and options
package modkit

import (
	"strings"
	"sync"

	"umamiconnector/internal/modkit/httpkit"
)

// Module is one mountable slice of the API
type Module interface {
	Name() string
	// Prefix is where MountRoutes scopes the module, e.g. /connector
	Prefix() string
	// Ports is what the module offers other modules, nil for nothing
	Ports() any
	MountRoutes(r httpkit.Router)
}

// Option customises a module at construction
type Option func(*Base)

// WithPrefix overrides the module prefix
func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares runs mw on every module route, in order
func WithMiddlewares(mw ...httpkit.Middleware) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithPorts hands the module a port owned by another module or the host
func WithPorts[T any](p T) Option { return func(b *Base) { b.injected = p } }

// WithSwagger sets whether the module adjusts the served docs
func WithSwagger(on bool) Option { return func(b *Base) { b.swagger = on } }

// WithRoutes registers extra routes after the module's own
func WithRoutes(fn func(httpkit.Router)) Option { return func(b *Base) { b.extra = fn } }

// Base carries what every module shares; modules embed it
type Base struct {
	name     string
	prefix   string
	mw       []httpkit.Middleware
	swagger  bool
	injected any
	extra    func(httpkit.Router)
}

// NewBase applies opts over the module defaults
func NewBase(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	if !strings.HasPrefix(b.prefix, "/") {
		b.prefix = "/" + b.prefix
	}
	b.prefix = strings.TrimSuffix(b.prefix, "/")
	return b
}

// Name is the module name
func (b *Base) Name() string { return b.name }

// Prefix is the normalised route prefix
func (b *Base) Prefix() string { return b.prefix }

// Swagger reports WithSwagger
func (b *Base) Swagger() bool { return b.swagger }

// Injected is the WithPorts value, nil when none was given
func (b *Base) Injected() any { return b.injected }

// Mount scopes register to the module prefix and middlewares
func (b *Base) Mount(r httpkit.Router, register func(httpkit.Router)) {
	httpkit.MountUnder(r, b.prefix, b.mw, func(sub httpkit.Router) {
		register(sub)
		if b.extra != nil {
			b.extra(sub)
		}
	})
}

var (
	portsMu sync.RWMutex
	ports   = map[string]any{}
)

// RegisterPorts publishes a module's ports under its name
func RegisterPorts(name string, p any) {
	portsMu.Lock()
	ports[name] = p
	portsMu.Unlock()
}

// PortsAs looks up the ports published under name as T
func PortsAs[T any](name string) (T, bool) {
	portsMu.RLock()
	v, ok := ports[name]
	portsMu.RUnlock()
	t, ok2 := v.(T)
	return t, ok && ok2
}

// ResetPorts empties the registry, for tests
func ResetPorts() {
	portsMu.Lock()
	ports = map[string]any{}
	portsMu.Unlock()
}
