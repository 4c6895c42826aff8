package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type annotations struct {
	mu     sync.Mutex
	fields []zap.Field
}

type annotationsKey struct{}

func withAnnotations(ctx context.Context) (context.Context, *annotations) {
	a := &annotations{}
	return context.WithValue(ctx, annotationsKey{}, a), a
}

// Annotate adds fields to the access line of the request carrying ctx.
// Outside the access middleware it does nothing.
func Annotate(ctx context.Context, fields ...zap.Field) {
	a, ok := ctx.Value(annotationsKey{}).(*annotations)
	if !ok {
		return
	}
	a.mu.Lock()
	a.fields = append(a.fields, fields...)
	a.mu.Unlock()
}

func (a *annotations) snapshot() []zap.Field {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]zap.Field(nil), a.fields...)
}
