package module

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/modkit"
	phttp "umamiconnector/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type readyBody struct {
	Data struct {
		Status string `json:"status"`
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
	} `json:"data"`
}

func serve(t *testing.T, deps modkit.Deps, path string) (int, []byte) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	New(deps).MountRoutes(r)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr.Code, rr.Body.Bytes()
}

func umamiAt(t *testing.T, status int) *umami.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)
	c, err := umami.NewClient(umami.Options{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		deps   modkit.Deps
		status string
		umami  string
	}{
		{"no umami", modkit.Deps{}, "ok", "skipped"},
		{"umami up", modkit.Deps{Umami: umamiAt(t, http.StatusOK)}, "ok", "ok"},
		{"umami down", modkit.Deps{Umami: umamiAt(t, http.StatusBadGateway)}, "fail", "fail"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, body := serve(t, c.deps, "/meta/ready")
			if code != http.StatusOK {
				t.Fatalf("code = %d body=%s", code, body)
			}
			var got readyBody
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Data.Status != c.status {
				t.Fatalf("status = %q, want %q", got.Data.Status, c.status)
			}
			if len(got.Data.Checks) != 1 || got.Data.Checks[0].Name != "umami" || got.Data.Checks[0].Status != c.umami {
				t.Fatalf("checks = %+v", got.Data.Checks)
			}
		})
	}
}

func TestVersionAndService(t *testing.T) {
	for _, path := range []string{"/meta/version", "/meta/service", "/meta/health"} {
		code, body := serve(t, modkit.Deps{}, path)
		if code != http.StatusOK {
			t.Fatalf("%s: code = %d", path, code)
		}
		var env struct {
			Data map[string]any `json:"data"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		name, _ := env.Data["service"].(string)
		if name == "" {
			name, _ = env.Data["name"].(string)
		}
		if name != ServiceName {
			t.Fatalf("%s: service = %q", path, name)
		}
	}
}

func TestNameAndPrefix(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPrefix("/m"))
	if m.Name() != "meta" || m.Prefix() != "/m" {
		t.Fatalf("name=%q prefix=%q", m.Name(), m.Prefix())
	}
}
