// Package http provides http transport for the connector
package http

import (
	stdhttp "net/http"

	"umamiconnector/internal/modkit/httpkit"
	"umamiconnector/internal/services/connector/domain"
	svc "umamiconnector/internal/services/connector/service"
)

// Register mounts connector endpoints on the given router
// routes that read or write a stored token go through auth
func Register(r httpkit.Router, s svc.Service, auth httpkit.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/auth/type", h.authType)

	// config steps and schema need no token
	httpkit.PostJSON[domain.ConfigInput](r, "/config", h.config)
	httpkit.PostJSON[domain.ConfigInput](r, "/schema", h.schema)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.CredentialsInput](pr, "/auth/credentials", h.setCredentials)
		httpkit.Post(pr, "/auth/verify", h.verify)
		httpkit.Delete(pr, "/auth", h.reset)
		httpkit.PostJSON[domain.DataInput](pr, "/data", h.data)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /connector/auth/type Connector connectorAuthType
// @Summary Credential type the host should collect
// @Tags Connector
// @Produce json
// @Success 200 {object} domain.AuthType "ok"
// @Router /connector/auth/type [get]
func (h *handlers) authType(_ *stdhttp.Request) (any, error) {
	return h.svc.AuthType(), nil
}

// swagger:route POST /connector/auth/credentials Connector connectorSetCredentials
// @Summary Log in to Umami and store the token
// @Tags Connector
// @Accept json
// @Produce json
// @Param X-Connector-User header string true "Host user"
// @Param payload body domain.CredentialsInput true "Credentials"
// @Success 200 {object} domain.AuthResult "ok"
// @Router /connector/auth/credentials [post]
func (h *handlers) setCredentials(r *stdhttp.Request, in domain.CredentialsInput) (any, error) {
	return h.svc.SetCredentials(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /connector/auth/verify Connector connectorVerify
// @Summary Check the stored token with Umami
// @Tags Connector
// @Produce json
// @Param X-Connector-User header string true "Host user"
// @Success 200 {object} domain.AuthResult "ok"
// @Router /connector/auth/verify [post]
func (h *handlers) verify(r *stdhttp.Request) (any, error) {
	return h.svc.IsAuthValid(r.Context(), httpkit.MustUser(r))
}

// swagger:route DELETE /connector/auth Connector connectorReset
// @Summary Forget the stored token
// @Tags Connector
// @Param X-Connector-User header string true "Host user"
// @Success 204 "no content"
// @Router /connector/auth [delete]
func (h *handlers) reset(r *stdhttp.Request) (any, error) {
	if err := h.svc.ResetAuth(r.Context(), httpkit.MustUser(r)); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /connector/config Connector connectorConfig
// @Summary Next configuration step
// @Tags Connector
// @Accept json
// @Produce json
// @Param payload body domain.ConfigInput true "Params so far"
// @Success 200 {object} report.ConfigForm "ok"
// @Router /connector/config [post]
func (h *handlers) config(r *stdhttp.Request, in domain.ConfigInput) (any, error) {
	return h.svc.ConfigForm(r.Context(), in)
}

// swagger:route POST /connector/schema Connector connectorSchema
// @Summary Declared schema for the configured report
// @Tags Connector
// @Accept json
// @Produce json
// @Param payload body domain.ConfigInput true "Params"
// @Success 200 {object} domain.SchemaResult "ok"
// @Router /connector/schema [post]
func (h *handlers) schema(r *stdhttp.Request, in domain.ConfigInput) (any, error) {
	return h.svc.Schema(r.Context(), in)
}

// swagger:route POST /connector/data Connector connectorData
// @Summary Fetch and normalize report rows
// @Tags Connector
// @Accept json
// @Produce json
// @Param X-Connector-User header string true "Host user"
// @Param payload body domain.DataInput true "Params and date range"
// @Success 200 {object} domain.DataResult "ok"
// @Router /connector/data [post]
func (h *handlers) data(r *stdhttp.Request, in domain.DataInput) (any, error) {
	return h.svc.Data(r.Context(), httpkit.MustUser(r), in)
}
