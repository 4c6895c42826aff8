package core

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{ name string }

var dispatchIDKey = &contextKey{"dispatch-id"}

// WithDispatchID tags ctx with a correlation id for one dispatch.
func WithDispatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, dispatchIDKey, id)
}

// DispatchID returns the id set by WithDispatchID, or "".
func DispatchID(ctx context.Context) string {
	if id, ok := ctx.Value(dispatchIDKey).(string); ok {
		return id
	}
	return ""
}

// EnsureDispatchID keeps an existing id or assigns a new random one.
func EnsureDispatchID(ctx context.Context) (context.Context, string) {
	if id := DispatchID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithDispatchID(ctx, id), id
}
