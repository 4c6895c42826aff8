// Package urlx parses the router's addressing scheme:
//
//	scheme://host/submodule1/submodule2/.../leaf?query=params
//
// The host names a top-level module and every path segment names a nested
// module. Nothing here touches the network; the URL is a local address only.
package urlx

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmpty is returned by Parse for a blank input.
var ErrEmpty = errors.New("urlx: empty url")

// URL is a parsed router address. It is created per call and owned by the
// caller that parsed it.
type URL struct {
	Raw    string
	Scheme string
	Host   string
	// Segments are the decoded path segments with the root marker and empty
	// segments removed: "app://a/x//y/" yields ["x", "y"].
	Segments []string
	Query    url.Values
}

// Parse turns s into a URL. A missing scheme or host is not an error; callers
// decide what an incomplete address means for them.
func Parse(s string) (*URL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("urlx: parse %q: %w", s, err)
	}
	return &URL{
		Raw:      s,
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Segments: splitPath(u.Path),
		Query:    u.Query(),
	}, nil
}

// MustParse is Parse for static addresses in tests and examples.
func MustParse(s string) *URL {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// QueryParameter returns the query string as a flat mapping. Repeated keys
// keep their first value. It returns nil when the URL has no query.
func (u *URL) QueryParameter() map[string]string {
	if u == nil || len(u.Query) == 0 {
		return nil
	}
	out := make(map[string]string, len(u.Query))
	for k := range u.Query {
		out[k] = u.Query.Get(k)
	}
	return out
}

// QueryValue reports the first query value for key.
func (u *URL) QueryValue(key string) (string, bool) {
	if u == nil {
		return "", false
	}
	vs, ok := u.Query[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Raw
}
