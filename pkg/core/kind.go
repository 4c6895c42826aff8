package core

// Kind is the stock Type: a module name, a factory and a private
// sub-registry of nested types.
type Kind struct {
	module  string
	factory func() Handler
	subs    *Registry
}

// NewKind returns a Kind owning module. Nested types may be passed now or
// added later with Nest.
func NewKind(module string, factory func() Handler, subs ...Type) *Kind {
	if factory == nil {
		panic("core: kind " + module + " has no factory")
	}
	k := &Kind{module: module, factory: factory, subs: NewRegistry()}
	k.subs.Register(subs...)
	return k
}

// Nest registers nested types under k. Later entries overwrite earlier ones
// sharing a module identifier.
func (k *Kind) Nest(subs ...Type) *Kind {
	k.subs.Register(subs...)
	return k
}

func (k *Kind) Module() string { return k.module }

func (k *Kind) SubType(submodule string) Type {
	t, ok := k.subs.Lookup(submodule)
	if !ok {
		return nil
	}
	return t
}

func (k *Kind) New() Handler { return k.factory() }

// SubModules lists the nested module identifiers, sorted.
func (k *Kind) SubModules() []string { return k.subs.Modules() }
