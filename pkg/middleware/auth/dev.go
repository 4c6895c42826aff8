package auth

import (
	"net/http"
	"strings"
)

const (
	devUserHeader     = "X-Dev-User"
	devRoleHeader     = "X-Dev-Role"
	devProviderHeader = "X-Dev-Provider"
	devProvider       = "dev"
)

// devUserFromHeaders builds a user from X-Dev-* headers. Only consulted when
// AUTH_DEV_BYPASS=true.
func devUserFromHeaders(r *http.Request) User {
	name := strings.TrimSpace(r.Header.Get(devUserHeader))
	if name == "" {
		return User{}
	}
	return User{
		Username:             name,
		AuthenticationSource: AuthenticationSource{Provider: firstNonEmpty(strings.TrimSpace(r.Header.Get(devProviderHeader)), devProvider)},
		Role:                 Role{Name: strings.TrimSpace(r.Header.Get(devRoleHeader))},
	}
}
