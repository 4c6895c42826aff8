package metrics

import (
	"net/http"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// NewPromHttpHandler returns the /metrics handler.
func NewPromHttpHandler() http.Handler { return promhttp.Handler() }

func ProvideMetrics() http.Handler { return NewPromHttpHandler() }

func ProvideObserver() core.Observer { return DispatchObserver{} }

var Module = fx.Options(
	fx.Provide(fx.Annotate(ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
	fx.Provide(ProvideObserver),
)
