package auth

import (
	"context"
	"slices"
)

// UserFrom returns the user attached by the middleware, if any.
func UserFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userCtxKey).(User)
	return u, ok && u.Username != ""
}

func (m *Middleware) isAdminUser(u User) bool {
	return m.adminRole != "" && u.Role.Name == m.adminRole
}

func (m *Middleware) GetUser(ctx context.Context) User {
	u, _ := UserFrom(ctx)
	return u
}

// IsRole reports whether the caller holds role. Admins hold every role.
func (m *Middleware) IsRole(ctx context.Context, role Role) bool {
	return m.HasAnyRole(ctx, role.Name)
}

// HasAnyRole reports whether the caller holds one of roles, or is admin.
func (m *Middleware) HasAnyRole(ctx context.Context, roles ...string) bool {
	u, ok := UserFrom(ctx)
	if !ok {
		return false
	}
	return m.isAdminUser(u) || slices.Contains(roles, u.Role.Name)
}

func (m *Middleware) IsAdmin(ctx context.Context) bool {
	u, ok := UserFrom(ctx)
	return ok && m.isAdminUser(u)
}

func (m *Middleware) IsUser(ctx context.Context, username string) bool {
	return m.IsAnyUser(ctx, username)
}

// IsAnyUser reports whether the caller is one of usernames, or is admin.
func (m *Middleware) IsAnyUser(ctx context.Context, usernames ...string) bool {
	u, ok := UserFrom(ctx)
	if !ok {
		return false
	}
	return m.isAdminUser(u) || slices.Contains(usernames, u.Username)
}

func (m *Middleware) IsAuthenticated(ctx context.Context) bool {
	_, ok := UserFrom(ctx)
	return ok
}
