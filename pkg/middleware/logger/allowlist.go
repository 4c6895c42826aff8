package logger

import (
	"mime"
	"net/http"
	"strings"
	"sync"
)

const maxLoggedBody = 64 << 10

var (
	bodyLogMu sync.RWMutex
	// /route carries explicit parameters in its JSON body.
	bodyLogPaths = map[string]struct{}{"/route": {}}
)

// AddBodyLogPaths extends the allowlist at runtime.
func AddBodyLogPaths(paths ...string) {
	bodyLogMu.Lock()
	defer bodyLogMu.Unlock()
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			bodyLogPaths[p] = struct{}{}
		}
	}
}

func bodyLogged(path string) bool {
	bodyLogMu.RLock()
	defer bodyLogMu.RUnlock()
	_, ok := bodyLogPaths[path]
	return ok
}

// shouldLogBody admits small JSON writes on allowlisted paths.
func shouldLogBody(r *http.Request, body []byte) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	if len(body) == 0 || len(body) > maxLoggedBody {
		return false
	}
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		return false
	}
	return bodyLogged(r.URL.Path)
}
