package core

import "github.com/joeydtaylor/steeze-router/pkg/urlx"

// Merge combines the URL's query parameters with explicit, explicit values
// winning on conflicts. A nil URL yields an empty bag.
func Merge(u *urlx.URL, explicit Parameter) Parameter {
	out := Parameter{}
	if u == nil {
		return out
	}
	for k, v := range u.QueryParameter() {
		out[k] = v
	}
	for k, v := range explicit {
		out[k] = v
	}
	return out
}

// ValueFor reads a single key, preferring the URL's query value and falling
// back to explicit. Note the precedence is the reverse of Merge.
func ValueFor(key string, u *urlx.URL, explicit Parameter) (any, bool) {
	if u == nil {
		return nil, false
	}
	if v, ok := u.QueryValue(key); ok {
		return v, true
	}
	v, ok := explicit[key]
	return v, ok
}
