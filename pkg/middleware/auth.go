package middleware

import (
	"net/http"
	"strings"

	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT rejects requests without a valid "Bearer <token>" header and puts
// the token's user id into the request context.
func AuthJWT(tokens token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, raw, found := strings.Cut(authHeader, " ")
			raw = strings.TrimSpace(raw)
			if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), userID)))
		})
	}
}
