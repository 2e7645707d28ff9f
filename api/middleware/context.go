package middleware

import "context"

type ctxKeyType string

const (
	ctxRole ctxKeyType = "api_role"
)

// Role is the access level an API key grants.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// RoleFromContext returns the role the API-key middleware resolved, or the
// empty string outside guarded routes.
func RoleFromContext(ctx context.Context) Role {
	if role, ok := ctx.Value(ctxRole).(Role); ok {
		return role
	}
	return ""
}
