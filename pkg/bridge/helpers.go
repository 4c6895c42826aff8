package bridge

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-router/pkg/core"
	"go.uber.org/zap"
)

// response is the body of every dispatch endpoint.
type response struct {
	ID      string         `json:"id"`
	Value   any            `json:"value,omitempty"`
	Result  map[string]any `json:"result,omitempty"`
	Pending bool           `json:"pending,omitempty"`
}

func (b *bridge) writeJSON(w http.ResponseWriter, v any, status int) {
	out, err := b.codec.Marshal(v)
	if err != nil {
		b.log.Error("encode response", zap.Error(err))
		http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", b.codec.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func (b *bridge) writeError(w http.ResponseWriter, status int, msg string) {
	b.writeJSON(w, map[string]any{"error": msg}, status)
}

// writeResolveError reports a cycle or depth failure with its trail.
func (b *bridge) writeResolveError(w http.ResponseWriter, id string, err error) {
	body := map[string]any{"id": id, "error": err.Error()}
	var re *core.ResolveError
	if errors.As(err, &re) {
		body["trail"] = re.Trail
	}
	b.writeJSON(w, body, http.StatusLoopDetected)
}

// statusFor maps a handler outcome to an HTTP status.
func statusFor(r core.Result) int {
	switch {
	case r.Succeeded:
		return http.StatusOK
	case core.IsFallback(r):
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

// explicitParams turns every query key but "url" into a parameter, using the
// first value of repeated keys.
func explicitParams(q url.Values) core.Parameter {
	var p core.Parameter
	for k, vs := range q {
		if k == "url" || len(vs) == 0 {
			continue
		}
		if p == nil {
			p = core.Parameter{}
		}
		p[k] = vs[0]
	}
	return p
}

// dispatchContext reuses the request id as the dispatch id.
func dispatchContext(r *http.Request) (context.Context, string) {
	ctx := r.Context()
	if rid := chimd.GetReqID(ctx); rid != "" {
		ctx = core.WithDispatchID(ctx, rid)
	}
	return core.EnsureDispatchID(ctx)
}

// collector keeps the first Result a handler reports, from any goroutine.
type collector chan core.Result

func newCollector() collector { return make(collector, 1) }

func (c collector) done(r core.Result) {
	select {
	case c <- r:
	default:
	}
}

func (c collector) poll() (core.Result, bool) {
	select {
	case r := <-c:
		return r, true
	default:
		return core.Result{}, false
	}
}

func (c collector) wait(ctx context.Context) (core.Result, bool) {
	select {
	case r := <-c:
		return r, true
	case <-ctx.Done():
		return c.poll()
	}
}
