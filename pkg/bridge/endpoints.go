package bridge

import (
	"fmt"
	"io"
	"net/http"

	"github.com/joeydtaylor/steeze-router/pkg/codec"
	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
	"go.uber.org/zap"
)

const maxBody = 1 << 20

type bridge struct {
	d     *core.Dispatcher
	log   *zap.Logger
	codec codec.Codec
}

type routeRequest struct {
	URL       string         `json:"url"`
	Parameter core.Parameter `json:"parameter"`
}

// target parses raw and checks that its scheme is served. It writes the
// error response itself.
func (b *bridge) target(w http.ResponseWriter, raw string) (*urlx.URL, bool) {
	if raw == "" {
		b.writeError(w, http.StatusBadRequest, "missing url")
		return nil, false
	}
	u, err := urlx.Parse(raw)
	if err != nil {
		b.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if u.Scheme == "" {
		b.writeError(w, http.StatusBadRequest, "url has no scheme")
		return nil, false
	}
	if _, ok := b.d.Lookup(u.Scheme); !ok {
		b.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown scheme %q", u.Scheme))
		return nil, false
	}
	return u, true
}

func (b *bridge) fetch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	u, ok := b.target(w, q.Get("url"))
	if !ok {
		return
	}
	ctx, id := dispatchContext(r)

	logger.Annotate(ctx, zap.String("dispatchId", id))

	c := newCollector()
	v, err := b.d.FetchURL(ctx, u, explicitParams(q), c.done)
	if err != nil {
		b.writeResolveError(w, id, err)
		return
	}

	resp := response{ID: id, Value: v}
	status := http.StatusOK
	if res, ok := c.poll(); ok {
		logger.Annotate(ctx, zap.String("module", res.Module))
		resp.Result = res.Map()
		status = statusFor(res)
	}
	b.writeJSON(w, resp, status)
}

func (b *bridge) route(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		b.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req routeRequest
	if err := b.codec.Unmarshal(body, &req); err != nil {
		b.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, ok := b.target(w, req.URL)
	if !ok {
		return
	}
	ctx, id := dispatchContext(r)

	logger.Annotate(ctx, zap.String("dispatchId", id))

	c := newCollector()
	if err := b.d.RouteURL(ctx, u, req.Parameter, c.done); err != nil {
		b.writeResolveError(w, id, err)
		return
	}

	res, ok := c.wait(ctx)
	if !ok {
		b.log.Debug("route still pending", zap.String("url", u.String()), zap.String("dispatchId", id))
		b.writeJSON(w, response{ID: id, Pending: true}, http.StatusAccepted)
		return
	}
	logger.Annotate(ctx, zap.String("module", res.Module))
	b.writeJSON(w, response{ID: id, Result: res.Map()}, statusFor(res))
}

func (b *bridge) resolve(w http.ResponseWriter, r *http.Request) {
	u, ok := b.target(w, r.URL.Query().Get("url"))
	if !ok {
		return
	}
	t, trail, _, err := b.d.ResolveType(u)
	if err != nil {
		b.writeResolveError(w, "", err)
		return
	}
	logger.Annotate(r.Context(), zap.String("module", t.Module()), zap.Int("hops", trail.Hops()))
	b.writeJSON(w, map[string]any{
		"module": t.Module(),
		"trail":  trail,
		"hops":   trail.Hops(),
	}, http.StatusOK)
}
