package metrics

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

type collectOptions struct {
	mu        sync.RWMutex
	skip      map[string]struct{}
	normalize func(*http.Request) string
}

var opts = &collectOptions{
	skip:      map[string]struct{}{"/metrics": {}},
	normalize: RoutePattern,
}

// AddMetricsSkipPaths extends the skip list; "/metrics" is always skipped.
func AddMetricsSkipPaths(paths ...string) {
	opts.mu.Lock()
	defer opts.mu.Unlock()
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			opts.skip[p] = struct{}{}
		}
	}
}

// SetPathNormalizer replaces the uri label function. nil restores RoutePattern.
func SetPathNormalizer(fn func(*http.Request) string) {
	if fn == nil {
		fn = RoutePattern
	}
	opts.mu.Lock()
	opts.normalize = fn
	opts.mu.Unlock()
}

// RoutePattern labels by the matched chi pattern so ids in paths do not
// explode label cardinality. Unrouted requests fall back to the raw path.
func RoutePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func (o *collectOptions) skipped(r *http.Request) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.skip[r.URL.Path]
	return ok
}

func (o *collectOptions) label(r *http.Request) string {
	o.mu.RLock()
	fn := o.normalize
	o.mu.RUnlock()
	return fn(r)
}
