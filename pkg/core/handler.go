package core

import (
	"context"

	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// Parameter is the caller-defined parameter bag. A key present with a nil
// value is distinct from an absent key.
type Parameter map[string]any

// Result is the single payload every completion receives.
type Result struct {
	Succeeded bool   `json:"succeeded"`
	Module    string `json:"module,omitempty"`
	Value     any    `json:"value,omitempty"`
	Err       error  `json:"-"`
}

// Succeeded builds a successful Result for module.
func Succeeded(module string, v any) Result {
	return Result{Succeeded: true, Module: module, Value: v}
}

// Failed builds a failed Result for module.
func Failed(module string, err error) Result {
	return Result{Module: module, Err: err}
}

// Map renders r as the loosely typed payload older callers expect.
func (r Result) Map() map[string]any {
	m := map[string]any{"succeeded": r.Succeeded}
	if r.Module != "" {
		m["module"] = r.Module
	}
	if r.Value != nil {
		m["value"] = r.Value
	}
	if r.Err != nil {
		m["error"] = r.Err.Error()
	}
	return m
}

// Completion receives the outcome of a Route or Fetch. Handlers call it at
// most once, from any goroutine, possibly after the call has returned.
type Completion func(Result)

// Call invokes c when it is set.
func (c Completion) Call(r Result) {
	if c != nil {
		c(r)
	}
}

// Handler serves one resolved URL. A fresh Handler is built for every call.
type Handler interface {
	// Route performs a navigation and reports through done.
	Route(ctx context.Context, u *urlx.URL, p Parameter, done Completion)
	// Fetch performs a lookup. The value may be returned directly, passed
	// to done, or both.
	Fetch(ctx context.Context, u *urlx.URL, p Parameter, done Completion) any
}

// Type is a registrable, constructible handler kind.
type Type interface {
	// Module is the identifier this type owns in its registry and in URLs.
	Module() string
	// SubType returns the nested type serving submodule, or nil.
	SubType(submodule string) Type
	// New constructs a handler instance.
	New() Handler
}

// NopFetch gives a Handler the default Fetch: nothing happens and nil is
// returned.
type NopFetch struct{}

func (NopFetch) Fetch(context.Context, *urlx.URL, Parameter, Completion) any { return nil }

// HandlerFunc adapts a route function into a Handler with the default Fetch.
type HandlerFunc func(ctx context.Context, u *urlx.URL, p Parameter, done Completion)

func (f HandlerFunc) Route(ctx context.Context, u *urlx.URL, p Parameter, done Completion) {
	f(ctx, u, p, done)
}

func (HandlerFunc) Fetch(context.Context, *urlx.URL, Parameter, Completion) any { return nil }
