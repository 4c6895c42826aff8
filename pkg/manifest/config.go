package manifest

// Config is the top-level manifest: router limits, the HTTP bridge policy and
// one module tree per URL scheme.
type Config struct {
	Router  RouterSpec `toml:"router"`
	Bridge  BridgeSpec `toml:"bridge"`
	Schemes []Scheme   `toml:"scheme"`
}

// RouterSpec bounds resolution. Zero values mean "use the default".
type RouterSpec struct {
	MaxDepth    int `toml:"max_depth"`
	MaxForwards int `toml:"max_forwards"`
}

// BridgeSpec configures the HTTP surface exposing Route and Fetch.
type BridgeSpec struct {
	Guard  Guard  `toml:"guard"`
	Policy Policy `toml:"policy"`
}

type Guard struct {
	Roles       []string `toml:"roles"`
	Users       []string `toml:"users"`
	RequireAuth bool     `toml:"require_auth"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

const (
	DefaultMaxForwards = 8
	DefaultTimeoutMS   = 2000
)

// Validate normalizes names and checks every scheme and module.
func (c *Config) Validate() error {
	if err := c.validateLimits(); err != nil {
		return err
	}
	return c.validateSchemes()
}
