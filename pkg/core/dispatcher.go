package core

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/joeydtaylor/steeze-router/pkg/urlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/joeydtaylor/steeze-router/pkg/core"

// Observer is notified after every resolution a Dispatcher performs.
type Observer interface {
	ObserveDispatch(op, scheme, module string, hops int, err error)
}

// Dispatcher multiplexes registries by URL scheme and is the entry point for
// Route and Fetch.
type Dispatcher struct {
	mu       sync.RWMutex
	schemes  map[string]*Registry
	maxDepth int

	log    *zap.Logger
	tracer trace.Tracer
	obs    Observer
}

type Option func(*Dispatcher)

func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithSchemeMaxDepth sets the descent limit of registries created by Scheme.
func WithSchemeMaxDepth(n int) Option {
	return func(d *Dispatcher) { d.maxDepth = n }
}

func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.obs = o }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Dispatcher) {
		if tp != nil {
			d.tracer = tp.Tracer(tracerName)
		}
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		schemes: make(map[string]*Registry),
		log:     zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Scheme returns the registry for scheme, creating it on first use.
func (d *Dispatcher) Scheme(scheme string) *Registry {
	scheme = strings.ToLower(scheme)
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.schemes[scheme]
	if !ok {
		r = NewRegistry(WithMaxDepth(d.maxDepth))
		d.schemes[scheme] = r
	}
	return r
}

// Lookup returns the registry for scheme without creating it.
func (d *Dispatcher) Lookup(scheme string) (*Registry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, ok := d.schemes[strings.ToLower(scheme)]
	return r, ok
}

// Schemes lists the schemes with a registry, sorted.
func (d *Dispatcher) Schemes() []string {
	d.mu.RLock()
	out := make([]string, 0, len(d.schemes))
	for s := range d.schemes {
		out = append(out, s)
	}
	d.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Register adds top-level types to scheme's registry.
func (d *Dispatcher) Register(scheme string, types ...Type) {
	d.Scheme(scheme).Register(types...)
	for _, t := range types {
		d.log.Debug("registered module", zap.String("scheme", scheme), zap.String("module", t.Module()))
	}
}

// Route resolves raw and hands it to the handler's Route. A URL that does not
// parse, has no scheme, or names a scheme without a registry is ignored and
// done is never called. The only errors are resolution failures.
func (d *Dispatcher) Route(ctx context.Context, raw string, p Parameter, done Completion) error {
	u, ok := d.parse(raw)
	if !ok {
		return nil
	}
	return d.RouteURL(ctx, u, p, done)
}

// RouteURL is Route for an already parsed URL.
func (d *Dispatcher) RouteURL(ctx context.Context, u *urlx.URL, p Parameter, done Completion) error {
	if u == nil {
		return nil
	}
	ctx, span := d.start(ctx, "route", u)
	defer span.End()
	h, err := d.resolve(ctx, "route", u, p, span)
	if err != nil || h == nil {
		return err
	}
	h.Route(ctx, u, p, done)
	return nil
}

// Fetch resolves raw and returns whatever the handler's Fetch returns. The
// same no-op rules as Route apply, with a nil value.
func (d *Dispatcher) Fetch(ctx context.Context, raw string, p Parameter, done Completion) (any, error) {
	u, ok := d.parse(raw)
	if !ok {
		return nil, nil
	}
	return d.FetchURL(ctx, u, p, done)
}

// FetchURL is Fetch for an already parsed URL.
func (d *Dispatcher) FetchURL(ctx context.Context, u *urlx.URL, p Parameter, done Completion) (any, error) {
	if u == nil {
		return nil, nil
	}
	ctx, span := d.start(ctx, "fetch", u)
	defer span.End()
	h, err := d.resolve(ctx, "fetch", u, p, span)
	if err != nil || h == nil {
		return nil, err
	}
	return h.Fetch(ctx, u, p, done), nil
}

// ResolveType exposes resolution without dispatch, for diagnostics.
// ok is false when u has no scheme or the scheme has no registry.
func (d *Dispatcher) ResolveType(u *urlx.URL) (t Type, trail Trail, ok bool, err error) {
	if u == nil || u.Scheme == "" {
		return nil, nil, false, nil
	}
	reg, found := d.Lookup(u.Scheme)
	if !found {
		return nil, nil, false, nil
	}
	t, trail, err = reg.ResolveType(u)
	return t, trail, true, err
}

func (d *Dispatcher) parse(raw string) (*urlx.URL, bool) {
	u, err := urlx.Parse(raw)
	if err != nil {
		d.log.Debug("ignoring unparseable url", zap.String("url", raw), zap.Error(err))
		return nil, false
	}
	return u, true
}

func (d *Dispatcher) start(ctx context.Context, op string, u *urlx.URL) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = EnsureDispatchID(ctx)
	return d.tracer.Start(ctx, "steeze-router."+op, trace.WithAttributes(
		attribute.String("router.url", u.String()),
		attribute.String("router.dispatch_id", DispatchID(ctx)),
	))
}

func (d *Dispatcher) resolve(ctx context.Context, op string, u *urlx.URL, p Parameter, span trace.Span) (Handler, error) {
	log := d.log.With(
		zap.String("op", op),
		zap.String("url", u.String()),
		zap.String("dispatchId", DispatchID(ctx)),
	)
	log.Debug("will dispatch", zap.Strings("parameterKeys", keys(p)))

	t, trail, ok, err := d.ResolveType(u)
	if !ok {
		log.Debug("no registry for scheme", zap.String("scheme", u.Scheme))
		return nil, nil
	}
	module := ""
	if t != nil {
		module = t.Module()
	}
	if d.obs != nil {
		d.obs.ObserveDispatch(op, u.Scheme, module, trail.Hops(), err)
	}
	span.SetAttributes(attribute.String("router.trail", trail.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var re *ResolveError
		if errors.As(err, &re) {
			log.Error("resolution failed", zap.Strings("trail", re.Trail), zap.Error(re.Err))
		}
		return nil, err
	}
	log.Debug("resolved", zap.String("module", module), zap.Int("hops", trail.Hops()))
	return t.New(), nil
}

func keys(p Parameter) []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
