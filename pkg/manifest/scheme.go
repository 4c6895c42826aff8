package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// Scheme is the module tree served for one URL scheme.
type Scheme struct {
	Name    string   `toml:"name"`
	Modules []Module `toml:"module"`
}

// Module declares a handler type and its nested modules.
type Module struct {
	Name    string   `toml:"name"`
	Handler HSpec    `toml:"handler"`
	Modules []Module `toml:"module"`
}

// normalize trims names and lowercases the scheme, matching how URLs parse.
func (s *Scheme) normalize() error {
	s.Name = strings.ToLower(strings.TrimSpace(s.Name))
	if s.Name == "" {
		return errors.New("name is required")
	}
	if strings.ContainsAny(s.Name, ":/") {
		return fmt.Errorf("name %q must not contain ':' or '/'", s.Name)
	}
	return nil
}

func (m *Module) normalize() error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return errors.New("name is required")
	}
	if strings.Contains(m.Name, "/") {
		return fmt.Errorf("name %q must not contain '/'", m.Name)
	}
	if m.Name == core.EmptyModule {
		return fmt.Errorf("name %q is reserved", m.Name)
	}
	m.Handler.Type = HandlerType(strings.ToLower(strings.TrimSpace(string(m.Handler.Type))))
	m.Handler.Name = strings.TrimSpace(m.Handler.Name)
	m.Handler.Target = strings.TrimSpace(m.Handler.Target)
	return nil
}

// validate checks fields that are independent of the rest of the tree.
func (m *Module) validate() error {
	switch m.Handler.Type {
	case HandlerInproc:
		if m.Handler.Name == "" {
			return errors.New("handler.name required for inproc")
		}
	case HandlerStatic:
	case HandlerForward:
		if m.Handler.Target == "" {
			return errors.New("handler.target required for forward")
		}
		u, err := urlx.Parse(m.Handler.Target)
		if err != nil {
			return fmt.Errorf("handler.target: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("handler.target %q needs a scheme and host", m.Handler.Target)
		}
	case "":
		return errors.New("handler.type is required")
	default:
		return fmt.Errorf("unknown handler type %q", m.Handler.Type)
	}
	return nil
}
