package httpkit

import (
	"net/http"
	"strings"

	perr "umamiconnector/internal/platform/errors"
	pnet "umamiconnector/internal/platform/net"
	"umamiconnector/internal/platform/net/middleware"
)

// DefaultUserHeader carries the host user id when none is configured
const DefaultUserHeader = "X-Connector-User"

// AuthPort resolves the host user for Protected routes
type AuthPort = middleware.AuthPort

// Auth is the middleware Protected installs
func Auth(p AuthPort) Middleware { return middleware.Auth(p) }

// UserFunc maps a raw header value to the user id, rejecting it with an error
type UserFunc func(raw string) (string, error)

// HeaderPort reads the host user from a single request header
// the host proxy is trusted to set it, so any non empty value is accepted
// unless a UserFunc says otherwise
type HeaderPort struct {
	header string
	check  UserFunc
}

// NewHeaderPort reads header, DefaultUserHeader when blank; check may be nil
func NewHeaderPort(header string, check UserFunc) *HeaderPort {
	header = strings.TrimSpace(header)
	if header == "" {
		header = DefaultUserHeader
	}
	return &HeaderPort{header: header, check: check}
}

// Header is the header name read
func (p *HeaderPort) Header() string { return p.header }

// Parse implements AuthPort
func (p *HeaderPort) Parse(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(p.header))
	if raw == "" {
		return "", perr.Unauthorizedf("missing %s header", p.header)
	}
	if p.check == nil {
		return raw, nil
	}
	uid, err := p.check(raw)
	if err != nil || uid == "" {
		return "", perr.Unauthorizedf("invalid %s header", p.header)
	}
	return uid, nil
}

// User is the host user Protected resolved for r
func User(r *http.Request) (string, error) {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return uid, nil
	}
	return "", perr.Unauthorizedf("missing connector user")
}

// MustUser is User for handlers mounted under Protected; it panics elsewhere
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}
