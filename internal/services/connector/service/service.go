// Package service contains the connector facade
package service

import (
	"context"
	"strings"

	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/core/report"
	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/logger"
	"umamiconnector/internal/services/connector/domain"
)

// Service defines the connector service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the connector facade
type Svc struct {
	up      domain.Upstream
	tokens  domain.TokenStore
	catalog report.Catalog
	log     logger.Logger
}

// Option configures Svc
type Option func(*Svc)

// WithCatalog overrides the schema catalog
func WithCatalog(c report.Catalog) Option { return func(s *Svc) { s.catalog = c } }

// WithLogger overrides the component logger
func WithLogger(l logger.Logger) Option { return func(s *Svc) { s.log = l } }

// New constructs the facade
func New(up domain.Upstream, tokens domain.TokenStore, opts ...Option) *Svc {
	if up == nil {
		panic("connector.Service requires a non nil Upstream")
	}
	if tokens == nil {
		panic("connector.Service requires a non nil TokenStore")
	}
	s := &Svc{up: up, tokens: tokens, catalog: report.DefaultCatalog, log: *logger.Named("connector")}
	for _, o := range opts {
		o(s)
	}
	for _, k := range report.Kinds() {
		if s.catalog.WidthMismatch(k) {
			w, _ := report.RowWidth(k)
			sc, _ := s.catalog.SchemaFor(k)
			s.log.Warn().
				Str("kind", string(k)).
				Int("schema_fields", len(sc)).
				Int("row_values", w).
				Msg("declared schema is narrower than the rows it describes")
		}
	}
	return s
}

// AuthType returns the credential form the host should show
func (s *Svc) AuthType() domain.AuthType {
	return domain.AuthType{Type: domain.AuthTypeUserPass, HelpURL: domain.AuthHelpURL}
}

// SetCredentials logs in upstream and stores the token for user
func (s *Svc) SetCredentials(ctx context.Context, user string, in domain.CredentialsInput) (domain.AuthResult, error) {
	key, err := userKey(user)
	if err != nil {
		return domain.AuthResult{}, err
	}
	token, err := s.up.Login(ctx, in.Username, in.Password)
	if err != nil {
		if _, ok := umami.AsStatus(err); ok {
			logger.C(ctx).Info().Err(err).Msg("umami login rejected")
			return domain.AuthResult{Valid: false}, nil
		}
		return domain.AuthResult{}, err
	}
	if err := s.tokens.Set(ctx, key, token); err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Valid: true}, nil
}

// IsAuthValid verifies the stored token upstream
func (s *Svc) IsAuthValid(ctx context.Context, user string) (domain.AuthResult, error) {
	key, err := userKey(user)
	if err != nil {
		return domain.AuthResult{}, err
	}
	token, ok, err := s.tokens.Get(ctx, key)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if !ok || token == "" {
		return domain.AuthResult{Valid: false}, nil
	}
	valid, err := s.up.Verify(ctx, token)
	if err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Valid: valid}, nil
}

// ResetAuth forgets the stored token
func (s *Svc) ResetAuth(ctx context.Context, user string) error {
	key, err := userKey(user)
	if err != nil {
		return err
	}
	return s.tokens.Delete(ctx, key)
}

// ConfigForm describes the next configuration step
func (s *Svc) ConfigForm(_ context.Context, in domain.ConfigInput) (report.ConfigForm, error) {
	return report.BuildConfigForm(in.Params())
}

// Schema returns the declared schema for the configured kind
func (s *Svc) Schema(_ context.Context, in domain.ConfigInput) (domain.SchemaResult, error) {
	kind, err := in.Params().Kind()
	if err != nil {
		return domain.SchemaResult{}, err
	}
	sc, err := s.catalog.SchemaFor(kind)
	if err != nil {
		return domain.SchemaResult{}, err
	}
	return domain.SchemaResult{Schema: sc}, nil
}

// Data builds the query, fetches it with the stored token and normalizes the body
func (s *Svc) Data(ctx context.Context, user string, in domain.DataInput) (domain.DataResult, error) {
	params := in.Params()
	kind, err := params.Kind()
	if err != nil {
		return domain.DataResult{}, err
	}
	q, err := report.BuildQuery(kind, params, in.Range())
	if err != nil {
		return domain.DataResult{}, err
	}
	sc, err := s.catalog.SchemaFor(kind)
	if err != nil {
		return domain.DataResult{}, err
	}
	idx, err := project(sc, in.Fields)
	if err != nil {
		return domain.DataResult{}, err
	}

	token, err := s.token(ctx, user)
	if err != nil {
		return domain.DataResult{}, err
	}

	raw, err := s.up.Get(ctx, q, token)
	if err != nil {
		return domain.DataResult{}, err
	}
	rows, err := report.Normalize(kind, raw)
	if err != nil {
		return domain.DataResult{}, err
	}

	logger.C(ctx).Debug().Str("kind", string(kind)).Int("rows", len(rows)).Msg("connector data")

	if idx == nil {
		return domain.DataResult{Schema: sc, Rows: rows}, nil
	}
	out := make(report.FieldSchema, len(idx))
	for i, j := range idx {
		out[i] = sc[j]
	}
	for r := range rows {
		vals := make([]any, len(idx))
		for i, j := range idx {
			if j < len(rows[r].Values) {
				vals[i] = rows[r].Values[j]
			}
		}
		rows[r].Values = vals
	}
	return domain.DataResult{Schema: out, Rows: rows}, nil
}

func (s *Svc) token(ctx context.Context, user string) (string, error) {
	key, err := userKey(user)
	if err != nil {
		return "", err
	}
	token, ok, err := s.tokens.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok || token == "" {
		return "", perr.Unauthorizedf("no Umami token stored, set credentials first")
	}
	return token, nil
}

// project maps requested field names to schema positions; nil keeps every field
func project(sc report.FieldSchema, fields []string) ([]int, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	pos := make(map[string]int, len(sc))
	for i, f := range sc {
		pos[f.ID] = i
	}
	idx := make([]int, 0, len(fields))
	for _, name := range fields {
		i, ok := pos[name]
		if !ok {
			return nil, perr.WithField(perr.Validationf("unknown field %q", name), "fields")
		}
		idx = append(idx, i)
	}
	return idx, nil
}

func userKey(user string) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", perr.Unauthorizedf("missing connector user")
	}
	return credentials.UserKey(user), nil
}

// IsUnauthorized reports whether err asks the host to re-authenticate
func IsUnauthorized(err error) bool {
	if perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		return true
	}
	se, ok := umami.AsStatus(err)
	return ok && se.Status == 401
}
