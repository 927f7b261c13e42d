package domain

import (
	"context"
	"encoding/json"

	"umamiconnector/internal/core/report"
)

// ServicePort is consumed by handlers, the CLI and other modules
// user is the host user the stored token belongs to
type ServicePort interface {
	AuthType() AuthType
	SetCredentials(ctx context.Context, user string, in CredentialsInput) (AuthResult, error)
	IsAuthValid(ctx context.Context, user string) (AuthResult, error)
	ResetAuth(ctx context.Context, user string) error

	ConfigForm(ctx context.Context, in ConfigInput) (report.ConfigForm, error)
	Schema(ctx context.Context, in ConfigInput) (SchemaResult, error)
	Data(ctx context.Context, user string, in DataInput) (DataResult, error)
}

// Upstream is the Umami API the facade calls
type Upstream interface {
	Get(ctx context.Context, q report.QueryDescriptor, token string) (json.RawMessage, error)
	Login(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, token string) (bool, error)
}

// TokenStore persists the bearer token per host user
type TokenStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
