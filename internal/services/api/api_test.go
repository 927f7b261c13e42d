package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/modkit"
	"umamiconnector/internal/platform/config"
	phttp "umamiconnector/internal/platform/net/http"
	"umamiconnector/internal/services/connector/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMount(t *testing.T) {
	t.Cleanup(modkit.ResetPorts)

	up, err := umami.NewClient(umami.Options{Endpoint: "http://umami.invalid"})
	require.NoError(t, err)
	mem, err := credentials.NewMemory(0)
	require.NoError(t, err)

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{
		Config:        config.New().Prefix("API_MOUNT_TEST_"),
		Umami:         up,
		Tokens:        mem,
		EnableSwagger: true,
	})

	get := func(path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr
	}

	rr := get("/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ".", rr.Body.String())

	rr = get("/api/v1/connector/auth/type")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `"USER_PASS"`))

	rr = get("/api/v1/meta/version")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"umami-connector-api"`)

	assert.Equal(t, http.StatusOK, get("/api/docs/doc.json").Code)
	assert.Equal(t, http.StatusNotFound, get("/debug/pprof/").Code)

	_, ok := modkit.PortsAs[domain.ServicePort]("connector")
	assert.True(t, ok)
}
