package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/warehublabs/warehub-backend/api/responses"
	"github.com/warehublabs/warehub-backend/pkg/config"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
)

// APIKeyHeader carries the caller's key on every guarded request.
const APIKeyHeader = "Api-Key"

// APIKey resolves the request's API key to a role and seeds the context with
// it. The admin key may do anything; the viewer key is restricted to reads.
// A missing header is unauthenticated, a wrong key or a write with the
// viewer key is forbidden.
func APIKey(cfg config.AuthConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if key == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing api key"))
				return
			}

			role, ok := resolveRole(cfg, key)
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "invalid api key"))
				return
			}

			if role == RoleViewer && !isReadMethod(r.Method) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "api key is read-only"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxRole, role)
			if logg != nil {
				ctx = logg.WithField(ctx, "actor_role", string(role))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveRole(cfg config.AuthConfig, key string) (Role, bool) {
	if keysEqual(key, cfg.AdminKey) {
		return RoleAdmin, true
	}
	if cfg.ViewerKey != "" && keysEqual(key, cfg.ViewerKey) {
		return RoleViewer, true
	}
	return "", false
}

func keysEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isReadMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
