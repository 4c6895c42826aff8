package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// SystemLogName is the file behind the process logger.
const SystemLogName = "system.log"

// Middleware writes one access log line per request.
type Middleware struct{}

func ProvideLoggerMiddleware() *Middleware { return &Middleware{} }

// ProvideLogger opens the process logger and flushes it on stop.
func ProvideLogger(lc fx.Lifecycle) *zap.Logger {
	l := NewLog(SystemLogName)
	lc.Append(fx.StopHook(func() { _ = l.Sync() }))
	return l
}

var Module = fx.Options(
	fx.Provide(ProvideLoggerMiddleware),
	fx.Provide(ProvideLogger),
)
