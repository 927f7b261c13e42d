package httpkit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "umamiconnector/internal/platform/errors"
	pnet "umamiconnector/internal/platform/net"
	kit "umamiconnector/internal/platform/testkit"
)

func TestHeaderPort(t *testing.T) {
	p := NewHeaderPort("  ", nil)
	if p.Header() != DefaultUserHeader {
		t.Fatalf("header = %q", p.Header())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := p.Parse(req); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("missing header err = %v", err)
	}
	req.Header.Set(DefaultUserHeader, "  u-1 ")
	if uid, err := p.Parse(req); err != nil || uid != "u-1" {
		t.Fatalf("uid=%q err=%v", uid, err)
	}
}

func TestHeaderPortCheck(t *testing.T) {
	p := NewHeaderPort("X-Host-User", func(raw string) (string, error) {
		if !strings.HasPrefix(raw, "usr_") {
			return "", errors.New("bad prefix")
		}
		return strings.TrimPrefix(raw, "usr_"), nil
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.Header.Set("X-Host-User", "usr_42")
	if uid, err := p.Parse(req); err != nil || uid != "42" {
		t.Fatalf("uid=%q err=%v", uid, err)
	}
	req.Header.Set("X-Host-User", "42")
	_, err := p.Parse(req)
	if e, ok := perr.As(err); !ok || e.Message() != "invalid X-Host-User header" {
		t.Fatalf("err = %v", err)
	}
}

func TestUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := User(req); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("err = %v", err)
	}
	kit.MustPanic(t, func() { MustUser(req) })

	req = req.WithContext(pnet.WithUser(context.Background(), "u-9"))
	if MustUser(req) != "u-9" {
		t.Fatal("MustUser")
	}
}
