// Package credentials keeps the Umami bearer token for each host user
package credentials

import (
	"context"
	"strings"
)

// TokenKey is the property name the token is stored under
const TokenKey = "dscc.token"

// Store persists string values by key
// Get reports ok=false for a missing key, which is not an error
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// UserKey scopes TokenKey to one host user
func UserKey(user string) string {
	return TokenKey + ":" + strings.TrimSpace(user)
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendPG     = "pg"
	BackendSQLite = "sqlite"
)
