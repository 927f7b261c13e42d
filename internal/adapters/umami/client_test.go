package umami

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"umamiconnector/internal/core/report"
	perr "umamiconnector/internal/platform/errors"
)

const site = "02d89813-7a72-41e1-87f0-8d668f85008b"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{Endpoint: srv.URL + "/", UserAgent: "test-ua"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientValidatesEndpoint(t *testing.T) {
	for _, ep := range []string{"", "   ", "stats.example.com", "/relative"} {
		if _, err := NewClient(Options{Endpoint: ep}); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("endpoint %q: want validation error, got %v", ep, err)
		}
	}
	c, err := NewClient(Options{Endpoint: "https://stats.example.com//"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Endpoint() != "https://stats.example.com" {
		t.Fatalf("endpoint = %q", c.Endpoint())
	}
	if c.opts.Timeout != defaultTimeout || c.opts.UserAgent != defaultUA {
		t.Fatalf("defaults not applied: %+v", c.opts)
	}
}

func TestGetSendsQueryAndBearer(t *testing.T) {
	var gotAuth, gotPath, gotQuery, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `[{"x":"chrome","y":10}]`)
	})

	q, err := report.BuildQuery(report.Metrics, report.ParameterSet{
		report.ParamWebsiteID: site,
		report.ParamType:      "browser",
		report.ParamPageTitle: "a b",
	}, &report.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-02"})
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}

	raw, err := c.Get(context.Background(), q, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != `[{"x":"chrome","y":10}]` {
		t.Fatalf("body = %s", raw)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("auth = %q", gotAuth)
	}
	if gotUA != "test-ua" {
		t.Fatalf("ua = %q", gotUA)
	}
	if gotPath != "/api/websites/"+site+"/metrics" {
		t.Fatalf("path = %q", gotPath)
	}
	want := "startAt=1704067200000&endAt=1704153600000&type=browser&page_title=a%20b"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}
}

func TestGetNonOK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "Unauthorized\n")
	})
	_, err := c.Get(context.Background(), report.QueryDescriptor{Path: "/api/websites/x/active"}, "tok")
	se, ok := AsStatus(err)
	if !ok {
		t.Fatalf("want StatusError, got %v", err)
	}
	if se.Status != http.StatusUnauthorized || se.Body != "Unauthorized" {
		t.Fatalf("status error = %+v", se)
	}
	if err.Error() != "error while fetching data: 401 - Unauthorized" {
		t.Fatalf("message = %q", err.Error())
	}
	if perr.HTTPStatus(err) != http.StatusBadGateway {
		t.Fatalf("mapped status = %d", perr.HTTPStatus(err))
	}
}

func TestGetEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := c.Get(context.Background(), report.QueryDescriptor{Path: "/api/websites/x/active"}, "tok")
	if !errors.Is(err, report.ErrNoResponse) {
		t.Fatalf("want ErrNoResponse, got %v", err)
	}
}

func TestGetOversizedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "["+strings.Repeat(`{"x":"browser","y":1},`, maxBody/20)+`{"x":"os","y":2}]`)
	})
	_, err := c.Get(context.Background(), report.QueryDescriptor{Path: "/api/websites/x/metrics"}, "tok")
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("want upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "response exceeds 4 MiB") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestGetBodyAtLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := `["` + strings.Repeat("a", maxBody-4) + `"]`
		_, _ = io.WriteString(w, body)
	})
	raw, err := c.Get(context.Background(), report.QueryDescriptor{Path: "/api/websites/x/events"}, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(raw) != maxBody {
		t.Fatalf("len = %d, want %d", len(raw), maxBody)
	}
}

func TestTransportFailureIsNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ep := srv.URL
	srv.Close()

	c, err := NewClient(Options{Endpoint: ep, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = c.Get(context.Background(), report.QueryDescriptor{Path: "/api/websites/x/active"}, "tok")
	if !errors.Is(err, report.ErrNoResponse) {
		t.Fatalf("want ErrNoResponse, got %v", err)
	}
	if perr.HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("mapped status = %d", perr.HTTPStatus(err))
	}
}

func TestLogin(t *testing.T) {
	var got loginRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		if got.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, "bad credentials")
			return
		}
		_, _ = io.WriteString(w, `{"token":"t-123","user":{"id":"u1"}}`)
	})

	tok, err := c.Login(context.Background(), "admin", "secret")
	if err != nil || tok != "t-123" {
		t.Fatalf("Login = %q, %v", tok, err)
	}
	if got.Username != "admin" {
		t.Fatalf("username sent = %q", got.Username)
	}

	_, err = c.Login(context.Background(), "admin", "wrong")
	if se, ok := AsStatus(err); !ok || se.Status != http.StatusUnauthorized {
		t.Fatalf("want 401 StatusError, got %v", err)
	}
}

func TestLoginWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	if _, err := c.Login(context.Background(), "a", "b"); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("want upstream error, got %v", err)
	}
}

func TestVerifyQuotesToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/api/auth/verify" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if !strings.Contains(gotAuth, `"good"`) {
			w.WriteHeader(http.StatusUnauthorized)
		}
	})

	ok, err := c.Verify(context.Background(), "good")
	if err != nil || !ok {
		t.Fatalf("Verify(good) = %v, %v", ok, err)
	}
	if gotAuth != `Bearer "good"` {
		t.Fatalf("auth = %q", gotAuth)
	}
	ok, err = c.Verify(context.Background(), "bad")
	if err != nil || ok {
		t.Fatalf("Verify(bad) = %v, %v", ok, err)
	}
}

func TestPing(t *testing.T) {
	healthy := true
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/heartbeat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	healthy = false
	err := c.Ping(context.Background())
	if se, ok := AsStatus(err); !ok || se.Status != http.StatusServiceUnavailable {
		t.Fatalf("want 503 status error, got %v", err)
	}
}
