package middlewares

import (
	"context"
	"crypto/subtle"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"net/http"
)

// AdminAPIKey guards staff-only routes. The key comparison is constant-time;
// an unset server-side key rejects everything rather than opening the routes.
func (m *Middlewares) AdminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		expected := m.InternalConfig.Admin.APIKey

		if expected == "" || apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
