package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is carried by the fallback handler's results.
	ErrNotFound = errors.New("core: no handler registered for host")
	// ErrRoutingCycle means descent reached a type already in the trail.
	ErrRoutingCycle = errors.New("core: routing cycle")
	// ErrTooManyHops means descent exceeded the registry's max depth.
	ErrTooManyHops = errors.New("core: too many descent hops")
)

// Trail lists the modules visited by a resolution, top-level first.
type Trail []string

func (t Trail) String() string { return strings.Join(t, " -> ") }

// Hops is the number of descent steps taken.
func (t Trail) Hops() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// ResolveError reports a resolution that could not terminate normally.
type ResolveError struct {
	URL   string
	Trail Trail
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %v (%s)", e.URL, e.Err, e.Trail)
}

func (e *ResolveError) Unwrap() error { return e.Err }
