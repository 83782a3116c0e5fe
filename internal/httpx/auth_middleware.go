package httpx

import (
	"net/http"
	"strings"

	"gutengate/internal/auth"
)

// AuthMiddleware verifies the caller's bearer token before any outbound
// call is made. The raw Authorization header stays on the request so
// handlers can relay it downstream unchanged.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				JSONDetail(w, http.StatusUnauthorized, "Missing Authorization Header")
				return
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				JSONDetail(w, http.StatusUnauthorized, "Bad Authorization header. Expected value 'Bearer <JWT>'")
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONDetail(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
