package core

import (
	"reflect"
	"sort"
	"sync"

	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// DefaultMaxDepth bounds descent when no other limit is configured.
const DefaultMaxDepth = 32

// Registry maps module identifiers to handler types. It is safe for
// concurrent Register and Resolve.
type Registry struct {
	mu       sync.RWMutex
	types    map[string]Type
	maxDepth int
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxDepth sets how many descent hops a resolution may take before it
// fails with ErrTooManyHops. Values <= 0 keep DefaultMaxDepth.
func WithMaxDepth(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.maxDepth = n
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{types: make(map[string]Type), maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register stores each type under its module, in order. An existing entry
// with the same module is overwritten.
func (r *Registry) Register(types ...Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		if t == nil {
			panic("core: register nil type")
		}
		m := t.Module()
		if m == "" {
			panic("core: register type with empty module")
		}
		r.types[m] = t
	}
}

// Lookup returns the type registered under module.
func (r *Registry) Lookup(module string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[module]
	return t, ok
}

// Modules lists the registered module identifiers, sorted.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.types))
	for m := range r.types {
		out = append(out, m)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

func (r *Registry) MaxDepth() int { return r.maxDepth }

// ResolveType finds the type that should serve u: the host's top-level type,
// descended through nested types until a step finds nothing. An absent or
// unknown host resolves to EmptyType.
func (r *Registry) ResolveType(u *urlx.URL) (Type, Trail, error) {
	if u == nil || u.Host == "" {
		return EmptyType, Trail{EmptyModule}, nil
	}
	cur, ok := r.Lookup(u.Host)
	if !ok {
		return EmptyType, Trail{EmptyModule}, nil
	}

	trail := Trail{cur.Module()}
	seen := map[Type]struct{}{}
	visit(seen, cur)
	for {
		next := SubTypeFrom(cur, u)
		if next == nil {
			return cur, trail, nil
		}
		trail = append(trail, next.Module())
		if trail.Hops() > r.maxDepth {
			return nil, trail, &ResolveError{URL: u.Raw, Trail: trail, Err: ErrTooManyHops}
		}
		if !visit(seen, next) {
			return nil, trail, &ResolveError{URL: u.Raw, Trail: trail, Err: ErrRoutingCycle}
		}
		cur = next
	}
}

// Resolve builds a handler instance for u.
func (r *Registry) Resolve(u *urlx.URL) (Handler, error) {
	t, _, err := r.ResolveType(u)
	if err != nil {
		return nil, err
	}
	return t.New(), nil
}

// visit records t and reports false if it was already seen. Types whose
// dynamic value is not comparable are only bounded by max depth.
func visit(seen map[Type]struct{}, t Type) bool {
	if !reflect.ValueOf(t).Comparable() {
		return true
	}
	if _, dup := seen[t]; dup {
		return false
	}
	seen[t] = struct{}{}
	return true
}
