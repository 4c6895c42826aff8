package handlers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// InprocHandler is the signature for user-defined in-process handlers. p is
// the merged parameter bag (query parameters overlaid with explicit ones).
type InprocHandler func(ctx context.Context, u *urlx.URL, p core.Parameter) (any, error)

var (
	mu       sync.RWMutex
	registry = map[string]InprocHandler{}
)

// Register makes a handler available under a name referenced in manifest.toml.
func Register(name string, h InprocHandler) {
	if name == "" || h == nil {
		panic("handlers: name and handler required")
	}
	mu.Lock()
	registry[name] = h
	mu.Unlock()
}

// Lookup retrieves a registered in-proc handler by name.
func Lookup(name string) (InprocHandler, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// Names lists the registered handler names, sorted.
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	mu.RUnlock()
	sort.Strings(out)
	return out
}

// inproc serves a module with a named function. The name is looked up per
// call so handlers registered after Build are still found.
type inproc struct {
	module string
	name   string
}

func (h inproc) call(ctx context.Context, u *urlx.URL, p core.Parameter) (any, error) {
	fn, ok := Lookup(h.name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInprocNotFound, h.name)
	}
	return fn(ctx, u, core.Merge(u, p))
}

func (h inproc) Route(ctx context.Context, u *urlx.URL, p core.Parameter, done core.Completion) {
	v, err := h.call(ctx, u, p)
	if err != nil {
		done.Call(core.Failed(h.module, err))
		return
	}
	done.Call(core.Succeeded(h.module, v))
}

func (h inproc) Fetch(ctx context.Context, u *urlx.URL, p core.Parameter, done core.Completion) any {
	v, err := h.call(ctx, u, p)
	if err != nil {
		done.Call(core.Failed(h.module, err))
		return nil
	}
	done.Call(core.Succeeded(h.module, v))
	return v
}
