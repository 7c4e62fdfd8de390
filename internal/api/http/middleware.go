package http

import (
	"net/http"
	"strings"

	"sandevex-hiring-backend/internal/security"
)

// AdminAuth rejects requests without a valid admin bearer token.
func AdminAuth(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Missing authorization token")
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")
			if _, err := tokens.ValidateToken(token); err != nil {
				if err == security.ErrExpiredToken {
					writeError(w, http.StatusUnauthorized, "Session expired, please log in again")
					return
				}
				writeError(w, http.StatusUnauthorized, "Invalid authorization token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
