package middleware

import (
	"net/http"

	"umamiconnector/internal/platform/logger"
	pnet "umamiconnector/internal/platform/net"
)

// AuthPort resolves the host user a request acts for
type AuthPort interface {
	Parse(r *http.Request) (userID string, err error)
}

// Auth rejects requests p cannot resolve with the error envelope and scopes
// the rest to the resolved user; a nil p lets everything through
func Auth(p AuthPort) Middleware {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := p.Parse(r)
			if err != nil {
				pnet.WriteError(w, r, err)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
