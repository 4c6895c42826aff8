package bundlefx

import (
	"github.com/joeydtaylor/steeze-router/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provides the auth middleware, the loggers, the named "metrics"
// handler and the dispatch observer.
var Module = fx.Options(
	auth.Module,
	logger.Module,
	metrics.Module,
)
