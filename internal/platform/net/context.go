// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"

	"textmate/internal/platform/logger"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyUserID ctxKey = "user_id"

// WithRequestID annotates ctx with the request id so chimw.GetReqID can
// retrieve it downstream. The logger context is annotated too so
// logger.C picks the id up
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
		ctx = logger.WithRequest(ctx, reqID, "")
	}
	return ctx
}

// WithUser annotates ctx with the authenticated user id.
// The logger context is annotated too so logger.C picks the id up
func WithUser(ctx context.Context, userID string) context.Context {
	if userID != "" {
		ctx = context.WithValue(ctx, keyUserID, userID)
		ctx = logger.WithRequest(ctx, "", userID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// UserID returns the authenticated user id on the context.
// Empty means the caller is anonymous
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(keyUserID).(string); ok {
		return v
	}
	return ""
}
