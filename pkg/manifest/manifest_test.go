package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[router]
max_depth = 16

[bridge.guard]
require_auth = true
roles = ["ops"]

[[scheme]]
name = " APP "

  [[scheme.module]]
  name = "user"
  handler = { type = "inproc", name = "user.show" }

    [[scheme.module.module]]
    name = "profile"
    handler = { type = "static", value = { title = "Profile", version = 2 } }

  [[scheme.module]]
  name = "legacy"
  handler = { type = "FORWARD", target = "app://user/profile" }

[[scheme]]
name = "admin"

  [[scheme.module]]
  name = "home"
  handler = { type = "static", value = "admin home" }
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Router.MaxDepth)
	assert.Equal(t, DefaultMaxForwards, cfg.Router.MaxForwards)
	assert.Equal(t, DefaultTimeoutMS, cfg.Bridge.Policy.TimeoutMS)
	assert.True(t, cfg.Bridge.Guard.RequireAuth)
	assert.Equal(t, []string{"ops"}, cfg.Bridge.Guard.Roles)

	require.Len(t, cfg.Schemes, 2)
	app := cfg.Schemes[0]
	assert.Equal(t, "app", app.Name)
	require.Len(t, app.Modules, 2)
	assert.Equal(t, HSpec{Type: HandlerInproc, Name: "user.show"}, app.Modules[0].Handler)
	require.Len(t, app.Modules[0].Modules, 1)

	profile := app.Modules[0].Modules[0]
	assert.Equal(t, "profile", profile.Name)
	assert.Equal(t, HandlerStatic, profile.Handler.Type)
	assert.Equal(t, map[string]any{"title": "Profile", "version": int64(2)}, profile.Handler.Value)

	assert.Equal(t, HandlerForward, app.Modules[1].Handler.Type)
	assert.Equal(t, "admin home", cfg.Schemes[1].Modules[0].Handler.Value)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "no schemes", doc: ``, want: "no schemes defined"},
		{name: "empty scheme name", doc: "[[scheme]]\nname = \"\"", want: "scheme 0: name is required"},
		{name: "scheme without modules", doc: "[[scheme]]\nname = \"app\"", want: "scheme 0 (app): no modules defined"},
		{
			name: "duplicate scheme",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a"
handler = { type = "static" }
[[scheme]]
name = "APP"
[[scheme.module]]
name = "a"
handler = { type = "static" }`,
			want: `scheme 1: duplicate scheme "app"`,
		},
		{
			name: "duplicate sibling",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a"
handler = { type = "static" }
[[scheme.module]]
name = "a"
handler = { type = "static" }`,
			want: `scheme 0 (app): module 1: duplicate module "a"`,
		},
		{
			name: "reserved name",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "Router.Empty"
handler = { type = "static" }`,
			want: `scheme 0 (app): module 0: name "Router.Empty" is reserved`,
		},
		{
			name: "slash in module",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a/b"
handler = { type = "static" }`,
			want: `scheme 0 (app): module 0: name "a/b" must not contain '/'`,
		},
		{
			name: "missing handler type",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a"`,
			want: "scheme 0 (app): module 0 (a): handler.type is required",
		},
		{
			name: "inproc without name",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a"
handler = { type = "inproc" }`,
			want: "scheme 0 (app): module 0 (a): handler.name required for inproc",
		},
		{
			name: "forward without host",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a"
handler = { type = "forward", target = "just/a/path" }`,
			want: `scheme 0 (app): module 0 (a): handler.target "just/a/path" needs a scheme and host`,
		},
		{
			name: "nested error carries path",
			doc: `[[scheme]]
name = "app"
[[scheme.module]]
name = "a"
handler = { type = "static" }
[[scheme.module.module]]
name = "b"
handler = { type = "bogus" }`,
			want: `scheme 0 (app): module 0 (a): module 0 (b): unknown handler type "bogus"`,
		},
		{
			name: "negative depth",
			doc:  "[router]\nmax_depth = -1",
			want: "router.max_depth must be >= 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestParseRejectsBadTOML(t *testing.T) {
	_, err := Parse([]byte("[[scheme"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Schemes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	var got []string
	cfg.Walk(func(scheme string, path []string, _ *Module) {
		got = append(got, scheme+"://"+filepath.ToSlash(filepath.Join(path...)))
	})
	assert.Equal(t, []string{"app://user", "app://user/profile", "app://legacy", "admin://home"}, got)
}
