// Package net carries request scoped values and the JSON envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type userKey struct{}

// WithRequest stores reqID under the chi key so chi and this package agree on it
// an empty id leaves ctx untouched
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithUser stores the host user the connector acts for
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, userID)
}

// RequestID is the chi request id or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// UserID is the host user or ""
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}
