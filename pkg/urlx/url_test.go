package urlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		scheme   string
		host     string
		segments []string
	}{
		{name: "host only", in: "app://moduleA", scheme: "app", host: "moduleA", segments: []string{}},
		{name: "root path", in: "app://moduleA/", scheme: "app", host: "moduleA", segments: []string{}},
		{name: "nested", in: "app://moduleA/x/y", scheme: "app", host: "moduleA", segments: []string{"x", "y"}},
		{name: "empty segments dropped", in: "app://a/x//y/", scheme: "app", host: "a", segments: []string{"x", "y"}},
		{name: "port stripped", in: "app://a:8080/x", scheme: "app", host: "a", segments: []string{"x"}},
		{name: "scheme lowered", in: "APP://Mod/Sub", scheme: "app", host: "Mod", segments: []string{"Sub"}},
		{name: "escaped segment", in: "app://a/hello%20world", scheme: "app", host: "a", segments: []string{"hello world"}},
		{name: "no scheme", in: "moduleA/x", scheme: "", host: "", segments: []string{"moduleA", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, u.Scheme)
			assert.Equal(t, tt.host, u.Host)
			assert.Equal(t, tt.segments, u.Segments)
			assert.Equal(t, tt.in, u.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("app://a/%zz")
	assert.Error(t, err)
}

func TestQueryParameter(t *testing.T) {
	u := MustParse("app://a?x=1&y=2&x=3")
	assert.Equal(t, map[string]string{"x": "1", "y": "2"}, u.QueryParameter())

	v, ok := u.QueryValue("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = u.QueryValue("z")
	assert.False(t, ok)

	assert.Nil(t, MustParse("app://a").QueryParameter())

	var nilURL *URL
	assert.Nil(t, nilURL.QueryParameter())
	assert.Equal(t, "", nilURL.String())
}
