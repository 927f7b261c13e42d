package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	modkit "umamiconnector/internal/modkit"
	"umamiconnector/internal/modkit/httpkit"
	"umamiconnector/internal/platform/config"
	phttp "umamiconnector/internal/platform/net/http"
	"umamiconnector/internal/platform/testkit"
	"umamiconnector/internal/services/connector/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deps(t *testing.T) modkit.Deps {
	t.Helper()
	c, err := umami.NewClient(umami.Options{Endpoint: "http://umami.invalid"})
	require.NoError(t, err)
	mem, err := credentials.NewMemory(0)
	require.NoError(t, err)
	return modkit.Deps{Cfg: config.New().Prefix("CONNECTOR_TEST_"), Umami: c, Tokens: mem}
}

func TestNew_Defaults(t *testing.T) {
	m := New(deps(t))
	assert.Equal(t, "connector", m.Name())
	assert.Equal(t, "/connector", m.Prefix())

	port, ok := m.Ports().(domain.ServicePort)
	require.True(t, ok)
	assert.Equal(t, domain.AuthTypeUserPass, port.AuthType().Type)

	res, err := port.IsAuthValid(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestNew_RequiresUmami(t *testing.T) {
	d := deps(t)
	d.Umami = nil
	testkit.MustPanic(t, func() { New(d) })
}

func TestMountRoutes(t *testing.T) {
	t.Setenv("CONNECTOR_TEST_USER_HEADER", "X-Host-User")
	m := New(deps(t), modkit.WithPrefix("/c"))

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/c/auth/type", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/c/auth/verify", nil)
	req.Header.Set(httpkit.DefaultUserHeader, "alice")
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code, "configured header replaces the default")

	req = httptest.NewRequest(http.MethodPost, "/c/auth/verify", nil)
	req.Header.Set("X-Host-User", "alice")
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
