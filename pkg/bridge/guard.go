package bridge

import (
	"net/http"

	"github.com/joeydtaylor/steeze-router/pkg/manifest"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/auth"
)

func guarded(g manifest.Guard) bool {
	return g.RequireAuth || len(g.Users) > 0 || len(g.Roles) > 0
}

func withGuard(next http.HandlerFunc, a *auth.Middleware, g manifest.Guard) http.HandlerFunc {
	if !guarded(g) {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		// without auth only unguarded endpoints are reachable
		if a == nil || !a.IsAuthenticated(r.Context()) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if len(g.Users) > 0 && !a.IsAnyUser(r.Context(), g.Users...) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if len(g.Users) == 0 && len(g.Roles) > 0 && !a.HasAnyRole(r.Context(), g.Roles...) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
