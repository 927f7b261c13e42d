package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"umamiconnector/internal/modkit/httpkit"
	phttp "umamiconnector/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger interface{ Ping() string }

type pong struct{}

func (pong) Ping() string { return "pong" }

func TestNewBase(t *testing.T) {
	b := NewBase("connector", "/connector")
	if b.Name() != "connector" || b.Prefix() != "/connector" || b.Swagger() || b.Injected() != nil {
		t.Fatalf("defaults: %+v", b)
	}

	b = NewBase("connector", "/connector", WithPrefix("reports/"), WithSwagger(true), WithPorts[pinger](pong{}))
	if b.Prefix() != "/reports" || !b.Swagger() {
		t.Fatalf("options: %+v", b)
	}
	if p, ok := b.Injected().(pinger); !ok || p.Ping() != "pong" {
		t.Fatalf("injected = %#v", b.Injected())
	}
}

func TestBaseMount(t *testing.T) {
	var order []string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "mw")
			next.ServeHTTP(w, r)
		})
	}
	b := NewBase("meta", "/meta", WithMiddlewares(mw), WithRoutes(func(r httpkit.Router) {
		httpkit.Get(r, "/extra", func(*http.Request) (any, error) { return "extra", nil })
	}))

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(sub httpkit.Router) {
		httpkit.Get(sub, "/own", func(*http.Request) (any, error) { return "own", nil })
	})

	for _, path := range []string{"/meta/own", "/meta/extra"} {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: %d", path, rr.Code)
		}
	}
	if len(order) != 2 {
		t.Fatalf("middleware ran %d times", len(order))
	}
}

func TestPortsRegistry(t *testing.T) {
	t.Cleanup(ResetPorts)

	RegisterPorts("meta", nil)
	RegisterPorts("connector", pong{})

	if p, ok := PortsAs[pinger]("connector"); !ok || p.Ping() != "pong" {
		t.Fatal("connector ports")
	}
	if _, ok := PortsAs[pinger]("meta"); ok {
		t.Fatal("nil ports matched")
	}
	if _, ok := PortsAs[string]("connector"); ok {
		t.Fatal("wrong type matched")
	}
	ResetPorts()
	if _, ok := PortsAs[pinger]("connector"); ok {
		t.Fatal("reset kept ports")
	}
}
