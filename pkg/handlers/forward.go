package handlers

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

type forwardKey struct{}

// forwardDepth counts the forwards already taken by this dispatch chain.
func forwardDepth(ctx context.Context) int {
	n, _ := ctx.Value(forwardKey{}).(int)
	return n
}

// forward re-dispatches to a fixed target. The caller's URL query and
// explicit parameters are merged and passed along as the explicit bag.
type forward struct {
	module string
	target string
	max    int
	d      *core.Dispatcher
}

func (h forward) next(ctx context.Context) (context.Context, error) {
	n := forwardDepth(ctx)
	if n >= h.max {
		return ctx, fmt.Errorf("%w: %d forwards from %s", ErrForwardLimit, n, h.module)
	}
	return context.WithValue(ctx, forwardKey{}, n+1), nil
}

func (h forward) Route(ctx context.Context, u *urlx.URL, p core.Parameter, done core.Completion) {
	ctx, err := h.next(ctx)
	if err != nil {
		done.Call(core.Failed(h.module, err))
		return
	}
	if err := h.d.Route(ctx, h.target, core.Merge(u, p), done); err != nil {
		done.Call(core.Failed(h.module, err))
	}
}

func (h forward) Fetch(ctx context.Context, u *urlx.URL, p core.Parameter, done core.Completion) any {
	ctx, err := h.next(ctx)
	if err != nil {
		done.Call(core.Failed(h.module, err))
		return nil
	}
	v, err := h.d.Fetch(ctx, h.target, core.Merge(u, p), done)
	if err != nil {
		done.Call(core.Failed(h.module, err))
		return nil
	}
	return v
}
