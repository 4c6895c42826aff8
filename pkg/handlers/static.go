package handlers

import (
	"context"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// static answers with a fixed value from the manifest.
type static struct {
	module string
	value  any
}

func (h static) Route(_ context.Context, _ *urlx.URL, _ core.Parameter, done core.Completion) {
	done.Call(core.Succeeded(h.module, h.value))
}

func (h static) Fetch(_ context.Context, _ *urlx.URL, _ core.Parameter, done core.Completion) any {
	done.Call(core.Succeeded(h.module, h.value))
	return h.value
}
