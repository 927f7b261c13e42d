package httpkit

import (
	"compress/flate"
	"time"

	"umamiconnector/internal/platform/net/middleware"
)

// StackOptions tunes Stack
type StackOptions struct {
	// CORSOrigins empty means same origin only
	CORSOrigins []string
	// UserHeader joins the CORS allowed headers, DefaultUserHeader when blank
	UserHeader string
	// Timeout bounds each request, 30s when zero
	Timeout time.Duration
	// SlowRequest marks access log lines as warn, 500ms when zero
	SlowRequest time.Duration
}

// Stack is the middleware chain every versioned route runs behind
func Stack(o StackOptions) []Middleware {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 500 * time.Millisecond
	}
	if o.UserHeader == "" {
		o.UserHeader = DefaultUserHeader
	}
	return []Middleware{
		middleware.RequestID(),
		middleware.RequestLogger,
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: o.CORSOrigins,
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", o.UserHeader},
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
