package manifest

import (
	"errors"
	"fmt"
)

func (c *Config) validateLimits() error {
	if c.Router.MaxDepth < 0 {
		return errors.New("router.max_depth must be >= 0")
	}
	if c.Router.MaxForwards < 0 {
		return errors.New("router.max_forwards must be >= 0")
	}
	if c.Router.MaxForwards == 0 {
		c.Router.MaxForwards = DefaultMaxForwards
	}
	if c.Bridge.Policy.TimeoutMS < 0 {
		return errors.New("bridge.policy.timeout_ms must be >= 0")
	}
	if c.Bridge.Policy.TimeoutMS == 0 {
		c.Bridge.Policy.TimeoutMS = DefaultTimeoutMS
	}
	return nil
}

// validateSchemes requires at least one scheme and unique names at every
// level of each tree.
func (c *Config) validateSchemes() error {
	if len(c.Schemes) == 0 {
		return errors.New("no schemes defined")
	}
	seen := map[string]struct{}{}
	for i := range c.Schemes {
		s := &c.Schemes[i]
		if err := s.normalize(); err != nil {
			return fmt.Errorf("scheme %d: %w", i, err)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("scheme %d: duplicate scheme %q", i, s.Name)
		}
		seen[s.Name] = struct{}{}
		if len(s.Modules) == 0 {
			return fmt.Errorf("scheme %d (%s): no modules defined", i, s.Name)
		}
		if err := validateModules(s.Modules); err != nil {
			return fmt.Errorf("scheme %d (%s): %w", i, s.Name, err)
		}
	}
	return nil
}

func validateModules(ms []Module) error {
	seen := map[string]struct{}{}
	for i := range ms {
		m := &ms[i]
		if err := m.normalize(); err != nil {
			return fmt.Errorf("module %d: %w", i, err)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("module %d: duplicate module %q", i, m.Name)
		}
		seen[m.Name] = struct{}{}
		if err := m.validate(); err != nil {
			return fmt.Errorf("module %d (%s): %w", i, m.Name, err)
		}
		if err := validateModules(m.Modules); err != nil {
			return fmt.Errorf("module %d (%s): %w", i, m.Name, err)
		}
	}
	return nil
}

// Walk visits every module of every scheme depth first. path holds the
// module names from the top level down to m.
func (c *Config) Walk(fn func(scheme string, path []string, m *Module)) {
	for i := range c.Schemes {
		walk(c.Schemes[i].Name, nil, c.Schemes[i].Modules, fn)
	}
}

func walk(scheme string, parent []string, ms []Module, fn func(string, []string, *Module)) {
	for i := range ms {
		path := append(append([]string(nil), parent...), ms[i].Name)
		fn(scheme, path, &ms[i])
		walk(scheme, path, ms[i].Modules, fn)
	}
}
