package auth

import (
	"net/http"
)

func (m *Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// never enable in prod
			if m.devBypass {
				if u := devUserFromHeaders(r); u.Username != "" {
					next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
					return
				}
			}

			// An explicit bearer token must be valid.
			if tok := bearer(r.Header.Get("Authorization")); tok != "" {
				u, err := m.validateAssertion(tok)
				if err != nil {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
				return
			}

			// A bad cookie falls through unauthenticated.
			if ac, _ := r.Cookie(m.assertCookieName); ac != nil && ac.Value != "" && m.configured() {
				if u, err := m.validateAssertion(ac.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
