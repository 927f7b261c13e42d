package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "umamiconnector/internal/platform/errors"
	phttp "umamiconnector/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int            `json:"status_code"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	Field      string         `json:"field"`
	RequestID  string         `json:"request_id"`
	Data       any            `json:"data"`
}

func do(t *testing.T, r Router, method, path, body string, header ...string) (int, envelope, http.Header) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	var env envelope
	if rr.Body.Len() > 0 {
		_ = json.Unmarshal(rr.Body.Bytes(), &env)
	}
	return rr.Code, env, rr.Header()
}

type creds struct {
	Username string `json:"username" validate:"required"`
}

func mounted() Router {
	r := phttp.AdaptChi(chi.NewRouter())
	MountAPI(r, "/v1/", Stack(StackOptions{}), func(api Router) {
		MountUnder(api, "/connector", nil, func(c Router) {
			Get(c, "/auth/type", func(*http.Request) (any, error) {
				return map[string]string{"type": "USER_PASS"}, nil
			})
			Protected(c, NewHeaderPort("", nil), func(p Router) {
				PostJSON(p, "/auth/credentials", func(r *http.Request, in creds) (any, error) {
					return map[string]string{"user": MustUser(r), "username": in.Username}, nil
				})
				Post(p, "/auth/verify", func(*http.Request) (any, error) { return true, nil })
				Delete(p, "/auth", func(*http.Request) (any, error) { return NoContent(), nil })
			})
		})
	})
	return r
}

func TestMountedRoutes(t *testing.T) {
	r := mounted()

	code, env, hdr := do(t, r, http.MethodGet, "/api/v1/connector/auth/type/", "")
	if code != http.StatusOK || env.Data.(map[string]any)["type"] != "USER_PASS" {
		t.Fatalf("auth/type: %d %+v", code, env)
	}
	if env.RequestID == "" || hdr.Get("X-Request-ID") != env.RequestID {
		t.Fatalf("request id body=%q header=%q", env.RequestID, hdr.Get("X-Request-ID"))
	}
	if hdr.Get("Cache-Control") == "" {
		t.Fatal("NoCache not applied")
	}

	code, env, _ = do(t, r, http.MethodPost, "/api/v1/connector/auth/credentials", `{"username":"admin"}`, DefaultUserHeader, "u-7")
	if code != http.StatusOK || env.Data.(map[string]any)["user"] != "u-7" {
		t.Fatalf("credentials: %d %+v", code, env)
	}

	code, env, _ = do(t, r, http.MethodPost, "/api/v1/connector/auth/credentials", `{}`, DefaultUserHeader, "u-7")
	if code != http.StatusBadRequest || env.Field != "username" {
		t.Fatalf("credentials validation: %d %+v", code, env)
	}

	code, env, _ = do(t, r, http.MethodPost, "/api/v1/connector/auth/verify", "")
	if code != http.StatusUnauthorized || env.Error != "missing X-Connector-User header" {
		t.Fatalf("verify without user: %d %+v", code, env)
	}

	code, _, _ = do(t, r, http.MethodDelete, "/api/v1/connector/auth", "", DefaultUserHeader, "u-7")
	if code != http.StatusNoContent {
		t.Fatalf("delete auth: %d", code)
	}
}

func TestErrorResponse(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Get(r, "/x", func(*http.Request) (any, error) { return Error(perr.InvalidArgf("invalid API path: x")), nil })
	code, env, _ := do(t, r, http.MethodGet, "/x", "")
	if code != http.StatusUnprocessableEntity || env.Code != perr.ErrorCodeInvalidArgument {
		t.Fatalf("%d %+v", code, env)
	}
}
