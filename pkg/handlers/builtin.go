package handlers

import (
	"context"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// RegisterBuiltins installs the handlers shipped with the server binary:
//
//	echo      returns the URL parts and the merged parameters
//	dispatch  returns the dispatch id of the current call
func RegisterBuiltins() {
	Register("echo", echo)
	Register("dispatch", func(ctx context.Context, _ *urlx.URL, _ core.Parameter) (any, error) {
		return map[string]any{"id": core.DispatchID(ctx)}, nil
	})
}

func echo(_ context.Context, u *urlx.URL, p core.Parameter) (any, error) {
	return map[string]any{
		"scheme":    u.Scheme,
		"host":      u.Host,
		"segments":  u.Segments,
		"parameter": p,
	}, nil
}
