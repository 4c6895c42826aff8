package core

import (
	"slices"

	"github.com/joeydtaylor/steeze-router/pkg/urlx"
)

// SubTypeFrom performs one descent step: it finds the nested type of t that
// should serve u, or nil when t has no deeper match.
//
// When the host names t, the first path segment is the target submodule.
// Otherwise t's own module must appear among the segments, and the segment
// right after its first occurrence is the target.
func SubTypeFrom(t Type, u *urlx.URL) Type {
	if t == nil || u == nil || u.Host == "" || len(u.Segments) == 0 {
		return nil
	}
	segs := u.Segments
	if u.Host == t.Module() {
		return t.SubType(segs[0])
	}
	i := slices.Index(segs, t.Module())
	if i < 0 || i == len(segs)-1 {
		return nil
	}
	return t.SubType(segs[i+1])
}
