package swaggerkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "umamiconnector/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMount(t *testing.T) {
	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false)
	rr := httptest.NewRecorder()
	off.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("disabled docs should 404, got %d", rr.Code)
	}

	on := phttp.AdaptChi(chi.NewRouter())
	Mount(on, true)

	rr = httptest.NewRecorder()
	on.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("expected redirect, got %d %q", rr.Code, rr.Header().Get("Location"))
	}

	rr = httptest.NewRecorder()
	on.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected doc.json 200, got %d", rr.Code)
	}
}
