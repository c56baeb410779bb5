package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"docbuilder/pkg/logger"
	"docbuilder/pkg/token"
)

type contextKey string

const UserIDKey contextKey = "userID"

// AuthMiddleware verifies the account token and puts the account id in the
// request context. Only the event feed is mounted behind it; the REST
// operations authorize from the owner id in the request body instead.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The browser WebSocket API can't set headers, so the token rides
		// the query string there.
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			authHeader := r.Header.Get("Authorization")
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			http.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
			return
		}

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			logger.Sugar.Error("JWT_SECRET environment variable not set")
			http.Error(w, "Server is not configured to validate tokens", http.StatusInternalServerError)
			return
		}

		userID, err := token.NewIssuer(secret).Verify(tokenString)
		if err != nil {
			logger.Sugar.Warnf("Invalid token: %v", err)
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
