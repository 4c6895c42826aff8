package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-router/pkg/bridge"
	"github.com/joeydtaylor/steeze-router/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/handlers"
	"github.com/joeydtaylor/steeze-router/pkg/manifest"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-router/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	Service         string // for logs only
	Manifest        string // explicit path; wins over ManifestEnv
	ManifestEnv     string // e.g. ROUTER_MANIFEST
	DefaultManifest string // e.g. "manifest.toml"
	ListenEnv       string // SERVER_LISTEN_ADDRESS
	DefaultListen   string
	TLSCertEnv      string // SSL_SERVER_CERTIFICATE
	TLSKeyEnv       string // SSL_SERVER_KEY
}

type Option func(*Config)

func WithService(s string) Option            { return func(c *Config) { c.Service = s } }
func WithManifest(path string) Option        { return func(c *Config) { c.Manifest = path } }
func WithManifestEnv(k string) Option        { return func(c *Config) { c.ManifestEnv = k } }
func WithDefaultManifest(path string) Option { return func(c *Config) { c.DefaultManifest = path } }
func WithListenEnv(k string) Option          { return func(c *Config) { c.ListenEnv = k } }
func WithDefaultListen(addr string) Option   { return func(c *Config) { c.DefaultListen = addr } }
func WithTLSCertKeyEnv(cert, key string) Option {
	return func(c *Config) { c.TLSCertEnv, c.TLSKeyEnv = cert, key }
}

func defaultConfig() Config {
	return Config{
		Service:         "steeze-router",
		ManifestEnv:     "ROUTER_MANIFEST",
		DefaultManifest: "manifest.toml",
		ListenEnv:       "SERVER_LISTEN_ADDRESS",
		DefaultListen:   ":4000",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

// ManifestPath is the manifest the service loads: Manifest, then
// $ManifestEnv, then DefaultManifest.
func (c Config) ManifestPath() string {
	if c.Manifest != "" {
		return c.Manifest
	}
	return envOr(c.ManifestEnv, c.DefaultManifest)
}

// Module returns a complete Fx option set; add app-specific fx.Invoke(...)
// alongside, e.g. to register inproc handlers.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		bundlefx.Module,
		fx.Provide(httpx.NewChi),
		fx.Supply(cfg),
		fx.Provide(provideManifest),
		fx.Provide(provideDispatcher),
		fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),
		fx.Invoke(registerHooks),
	)
}

// ---------- Manifest + dispatcher ----------

func provideManifest(cfg Config, zl *zap.Logger) (manifest.Config, error) {
	path := cfg.ManifestPath()
	man, err := manifest.Load(path)
	if err != nil {
		zl.Error("manifest load failed", zap.Error(err), zap.String("path", path))
		return manifest.Config{}, err
	}
	return man, nil
}

// provideDispatcher builds the scheme registries from the manifest and makes
// the result the process default.
func provideDispatcher(man manifest.Config, zl *zap.Logger, obs core.Observer) (*core.Dispatcher, error) {
	d := core.NewDispatcher(
		core.WithLogger(zl.Named("dispatch")),
		core.WithSchemeMaxDepth(man.Router.MaxDepth),
		core.WithObserver(obs),
	)
	if err := handlers.Build(man, d); err != nil {
		return nil, err
	}
	if missing := handlers.Missing(man); len(missing) > 0 {
		zl.Warn("inproc handlers not registered yet", zap.Strings("names", missing))
	}
	core.SetDefault(d)
	zl.Info("dispatcher ready", zap.Strings("schemes", d.Schemes()))
	return d, nil
}

// ---------- Router ----------

type routerDeps struct {
	fx.In

	Manifest   manifest.Config
	Dispatcher *core.Dispatcher
	AuthMW     *auth.Middleware
	LogMW      *logger.Middleware
	Metrics    http.Handler `name:"metrics"`
	R          httpx.Router
	Log        *zap.Logger
}

func provideRouter(d routerDeps) http.Handler {
	return bridge.BuildRouter(d.Manifest.Bridge, bridge.Deps{
		Dispatcher: d.Dispatcher,
		Auth:       d.AuthMW,
		LogMW:      d.LogMW,
		Metrics:    d.Metrics,
		Router:     d.R,
		Log:        d.Log,
	})
}

// ---------- Lifecycle ----------

type serverDeps struct {
	fx.In
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, cfg Config, d serverDeps) {
	addr := envOr(cfg.ListenEnv, cfg.DefaultListen)
	cert := os.Getenv(cfg.TLSCertEnv)
	key := os.Getenv(cfg.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	useTLS := fileExists(cert) && fileExists(key)
	if useTLS {
		srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS13}
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			log := d.Logger.With(zap.String("service", cfg.Service), zap.String("addr", ln.Addr().String()))
			go func() {
				var err error
				if useTLS {
					log.Info("server starting (TLS)", zap.String("cert", cert))
					err = srv.ServeTLS(ln, cert, key)
				} else {
					log.Info("server starting (PLAINTEXT)")
					err = srv.Serve(ln)
				}
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", cfg.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---------- tiny helpers ----------

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
