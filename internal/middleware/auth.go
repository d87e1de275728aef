package middleware

import (
	"net/http"
	"strings"

	"github.com/aichat/backend/internal/auth"
	"github.com/aichat/backend/internal/http/respond"
)

// TokenVerifier validates a bearer token and returns the user id it
// carries.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// RequireAuth gates protected routes. A missing or malformed
// Authorization header is rejected with 403; a token that fails
// verification with 401. On success the resolved user id is placed on
// the request context for downstream handlers.
func RequireAuth(verifier TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			respond.Message(w, http.StatusForbidden, "no token provided")
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			respond.Message(w, http.StatusUnauthorized, "token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	})
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}
