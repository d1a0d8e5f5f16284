package http

import (
	"context"
	"net/http"
	"strings"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/service"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const principalContextKey contextKey = "principal"

// RequireAuth resolves the bearer token to a principal and injects it into
// the request context. Role and ownership checks stay in the service layer;
// this middleware only answers "who is calling".
func RequireAuth(authSvc service.AuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := authSvc.ResolvePrincipal(r.Context(), token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next(w, r.WithContext(ctx))
	}
}

// PrincipalFromContext returns the authenticated user stored by RequireAuth.
func PrincipalFromContext(ctx context.Context) (*domain.User, bool) {
	principal, ok := ctx.Value(principalContextKey).(*domain.User)
	return principal, ok
}

// CORS allows the browser front end to call the API from another origin.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
