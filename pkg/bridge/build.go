package bridge

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-router/pkg/codec"
	"github.com/joeydtaylor/steeze-router/pkg/manifest"
	hmetrics "github.com/joeydtaylor/steeze-router/pkg/middleware/metrics"
	httpx "github.com/joeydtaylor/steeze-router/pkg/transport/httpx"
	"go.uber.org/zap"
)

// BuildRouter exposes the dispatcher over HTTP:
//
//	GET  /fetch?url=...    Fetch; other query keys become explicit parameters
//	POST /route            Route; body {"url": ..., "parameter": {...}}
//	GET  /resolve?url=...  the module trail, without dispatching
//
// /ping and /metrics are mounted unguarded.
func BuildRouter(spec manifest.BridgeSpec, d Deps) http.Handler {
	if d.Dispatcher == nil {
		panic("bridge: dispatcher required")
	}
	r := d.Router
	if r == nil {
		r = httpx.NewChi()
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r.Use(chimd.Heartbeat("/ping"))
	if d.Auth != nil {
		r.Use(d.Auth.Middleware())
	}
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware(d.Auth))
	}
	r.Use(hmetrics.Collect(d.Auth))

	if d.Metrics != nil {
		r.Get("/metrics", d.Metrics)
	}

	timeout := spec.Policy.TimeoutMS
	if timeout <= 0 {
		timeout = manifest.DefaultTimeoutMS
	}

	b := &bridge{d: d.Dispatcher, log: log, codec: codec.JSONParams}
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		h = withTimeout(h, time.Duration(timeout)*time.Millisecond)
		return withGuard(h, d.Auth, spec.Guard)
	}

	r.Get("/fetch", wrap(b.fetch))
	r.Post("/route", wrap(b.route))
	r.Get("/resolve", wrap(b.resolve))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		b.writeError(w, http.StatusNotFound, "not found")
	})
	return r.Mux()
}
