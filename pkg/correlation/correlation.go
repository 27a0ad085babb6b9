// Package correlation attaches a per-invocation correlation ID to a
// context.Context, so log lines from one cmd/slip39 invocation can be
// tied together the way request-scoped IDs tie together the lifetime of
// a network request.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// IDKey is the context key correlation IDs are stored under.
const IDKey contextKey = "correlation-id"

// WithID attaches id to ctx.
func WithID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, IDKey, id)
}

// FromContext retrieves the correlation ID from ctx, or "" if none is
// set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(IDKey).(string)
	return id
}

// New generates a fresh UUID v4 correlation ID.
func New() string {
	return uuid.New().String()
}

// GetOrGenerate returns ctx's existing correlation ID, or a freshly
// generated one if none is set.
func GetOrGenerate(ctx context.Context) string {
	if id := FromContext(ctx); id != "" {
		return id
	}
	return New()
}
