package core

import (
	"testing"

	"github.com/joeydtaylor/steeze-router/pkg/urlx"
	"github.com/stretchr/testify/assert"
)

// Merge lets explicit parameters win; ValueFor lets the query win. Both
// behaviors are relied on by handlers, so the asymmetry is pinned here.
func TestMergeAndValueForPrecedence(t *testing.T) {
	u := urlx.MustParse("app://a?x=1")
	explicit := Parameter{"x": 2, "y": 3}

	assert.Equal(t, Parameter{"x": 2, "y": 3}, Merge(u, explicit))

	v, ok := ValueFor("x", u, explicit)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = ValueFor("y", u, explicit)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		url      *urlx.URL
		explicit Parameter
		want     Parameter
	}{
		{name: "query only", url: urlx.MustParse("app://a?x=1&y=2"), want: Parameter{"x": "1", "y": "2"}},
		{name: "explicit only", url: urlx.MustParse("app://a"), explicit: Parameter{"k": true}, want: Parameter{"k": true}},
		{name: "nothing", url: urlx.MustParse("app://a"), want: Parameter{}},
		{name: "nil value kept", url: urlx.MustParse("app://a?x=1"), explicit: Parameter{"x": nil}, want: Parameter{"x": nil}},
		{name: "nil url", url: nil, explicit: Parameter{"k": 1}, want: Parameter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.url, tt.explicit))
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	explicit := Parameter{"x": 2}
	out := Merge(urlx.MustParse("app://a?y=1"), explicit)
	out["z"] = 3
	assert.Equal(t, Parameter{"x": 2}, explicit)
}

func TestValueForPresenceVersusNil(t *testing.T) {
	u := urlx.MustParse("app://a")

	v, ok := ValueFor("k", u, Parameter{"k": nil})
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = ValueFor("k", u, Parameter{})
	assert.False(t, ok)

	_, ok = ValueFor("k", nil, Parameter{"k": 1})
	assert.False(t, ok)
}
