// Package httpkit is the routing vocabulary modules register handlers with
// modules never import the platform http package directly
package httpkit

import (
	"net/http"
	"strings"

	phttp "umamiconnector/internal/platform/net/http"
)

type (
	// Router is the routing seam
	Router = phttp.Router
	// Handler is a registered handler
	Handler = phttp.Handler
	// Response is a return style result
	Response = phttp.Response
	// Middleware decorates a handler
	Middleware = func(http.Handler) http.Handler
)

// OK is a 200 with data
func OK(data any) Response { return phttp.OK(data) }

// NoContent is an empty 204
func NoContent() Response { return phttp.NoContent() }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Get registers a body less handler
func Get(r Router, path string, fn func(*http.Request) (any, error)) { r.Get(path, phttp.Call(fn)) }

// Post registers a body less handler
func Post(r Router, path string, fn func(*http.Request) (any, error)) { r.Post(path, phttp.Call(fn)) }

// Delete registers a body less handler
func Delete(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Delete(path, phttp.Call(fn))
}

// PostJSON registers a handler whose body is bound and validated into T
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(fn))
}

// MountUnder scopes mount to prefix with mw applied first
func MountUnder(r Router, prefix string, mw []Middleware, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI scopes mount to /api/{version}
func MountAPI(r Router, version string, mw []Middleware, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, mount)
}

// Protected groups routes that need a resolved host user
func Protected(r Router, p AuthPort, fn func(Router)) {
	r.Group(func(g Router) {
		g.Use(Auth(p))
		fn(g)
	})
}
