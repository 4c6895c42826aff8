package bridge

import (
	"net/http"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/steeze-router/pkg/transport/httpx"
	"go.uber.org/zap"
)

// Deps are the collaborators BuildRouter mounts. Only Dispatcher is required.
type Deps struct {
	Dispatcher *core.Dispatcher
	Auth       *auth.Middleware
	LogMW      *logger.Middleware
	Metrics    http.Handler
	Router     httpx.Router
	Log        *zap.Logger
}
