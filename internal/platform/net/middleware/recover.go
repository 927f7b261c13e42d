package middleware

import (
	"net/http"
	"runtime/debug"

	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/logger"
	pnet "umamiconnector/internal/platform/net"
)

// RecoverJSON turns a panic into the 500 error envelope
// the stack goes to the log, never to the client
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")
			pnet.WriteError(w, r, perr.New(perr.ErrorCodePanic, "internal server error"))
		}()
		next.ServeHTTP(w, r)
	})
}
