package handlers

import (
	"fmt"
	"sort"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/manifest"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// Build registers every module tree of cfg on d, one registry per scheme.
// cfg must already be validated.
func Build(cfg manifest.Config, d *core.Dispatcher) error {
	schemes := make(map[string]struct{}, len(cfg.Schemes))
	for _, s := range cfg.Schemes {
		schemes[s.Name] = struct{}{}
	}
	b := builder{d: d, schemes: schemes, maxForwards: cfg.Router.MaxForwards}
	if b.maxForwards <= 0 {
		b.maxForwards = manifest.DefaultMaxForwards
	}

	for _, s := range cfg.Schemes {
		types := make([]core.Type, 0, len(s.Modules))
		for _, m := range s.Modules {
			k, err := b.kind(m)
			if err != nil {
				return fmt.Errorf("scheme %s: %w", s.Name, err)
			}
			types = append(types, k)
		}
		d.Register(s.Name, types...)
	}
	return nil
}

type builder struct {
	d           *core.Dispatcher
	schemes     map[string]struct{}
	maxForwards int
}

func (b builder) kind(m manifest.Module) (*core.Kind, error) {
	factory, err := b.factory(m)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", m.Name, err)
	}
	k := core.NewKind(m.Name, factory)
	for _, child := range m.Modules {
		ck, err := b.kind(child)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.Name, err)
		}
		k.Nest(ck)
	}
	return k, nil
}

func (b builder) factory(m manifest.Module) (func() core.Handler, error) {
	module := m.Name
	switch m.Handler.Type {
	case manifest.HandlerInproc:
		h := inproc{module: module, name: m.Handler.Name}
		return func() core.Handler { return h }, nil
	case manifest.HandlerStatic:
		h := static{module: module, value: m.Handler.Value}
		return func() core.Handler { return h }, nil
	case manifest.HandlerForward:
		u, err := urlx.Parse(m.Handler.Target)
		if err != nil {
			return nil, err
		}
		if _, ok := b.schemes[u.Scheme]; !ok {
			return nil, fmt.Errorf("forward target %q uses undeclared scheme %q", m.Handler.Target, u.Scheme)
		}
		h := forward{module: module, target: m.Handler.Target, max: b.maxForwards, d: b.d}
		return func() core.Handler { return h }, nil
	default:
		return nil, fmt.Errorf("unknown handler type %q", m.Handler.Type)
	}
}

// Missing lists inproc handler names referenced by cfg that are not
// registered yet, sorted and de-duplicated.
func Missing(cfg manifest.Config) []string {
	set := map[string]struct{}{}
	cfg.Walk(func(_ string, _ []string, m *manifest.Module) {
		if m.Handler.Type != manifest.HandlerInproc {
			return
		}
		if _, ok := Lookup(m.Handler.Name); !ok {
			set[m.Handler.Name] = struct{}{}
		}
	})
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
