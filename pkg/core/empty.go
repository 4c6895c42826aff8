package core

import (
	"context"

	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// EmptyModule is reserved for the fallback handler.
const EmptyModule = "Router.Empty"

// EmptyType is returned by resolution when no registered module matches the
// URL's host. Its handlers always complete with Succeeded == false.
var EmptyType Type = NewKind(EmptyModule, func() Handler { return emptyHandler{} })

type emptyHandler struct{}

func (emptyHandler) Route(_ context.Context, _ *urlx.URL, _ Parameter, done Completion) {
	done.Call(Failed(EmptyModule, ErrNotFound))
}

func (emptyHandler) Fetch(_ context.Context, _ *urlx.URL, _ Parameter, done Completion) any {
	done.Call(Failed(EmptyModule, ErrNotFound))
	return nil
}

// IsFallback reports whether r came from the fallback handler.
func IsFallback(r Result) bool {
	return !r.Succeeded && r.Module == EmptyModule
}
