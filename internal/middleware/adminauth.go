package middleware

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// AdminSecretHeader carries the shared admin secret on gated requests
const AdminSecretHeader = "X-Admin-Secret"

// AdminAuthMiddleware gates the admin console routes behind the
// configured shared secret. This is the storefront's console lock, not
// a real authentication system: one static secret, no accounts.
func AdminAuthMiddleware(password string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := r.Header.Get(AdminSecretHeader)
			if secret == "" {
				logger.Debug("Missing admin secret header")
				RespondWithError(w, http.StatusUnauthorized, "missing admin secret")
				return
			}

			if !SecretsMatch(secret, password) {
				logger.Warn("Rejected admin request",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				RespondWithError(w, http.StatusUnauthorized, "invalid admin secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SecretsMatch compares two secrets in constant time
func SecretsMatch(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
