package manifest

// HandlerType enumerates the supported handler kinds.
type HandlerType string

const (
	// HandlerInproc calls a Go function registered by name.
	HandlerInproc HandlerType = "inproc"
	// HandlerStatic answers with the value written in the manifest.
	HandlerStatic HandlerType = "static"
	// HandlerForward re-dispatches to another router URL.
	HandlerForward HandlerType = "forward"
)

// HSpec selects and configures the handler behind a module.
type HSpec struct {
	Type   HandlerType `toml:"type"`
	Name   string      `toml:"name"`
	Value  any         `toml:"value"`
	Target string      `toml:"target"`
}
