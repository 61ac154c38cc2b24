package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/security"

	"github.com/google/uuid"
)

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered", "panic", err, "path", r.URL.Path)
				RespondWithError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware assigns a correlation ID to every request, honoring
// a caller-supplied X-Request-ID when present.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(rw, r)

		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start).String(),
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// AuthMiddleware validates the bearer token and attaches the verified
// identity to the request context. Credential issuance lives with the
// external identity provider; this layer only consumes its tokens.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				RespondWithError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				RespondWithError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers whose identity does not carry the admin
// role. Runs inside AuthMiddleware.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := IdentityFromContext(r.Context())
		if err != nil {
			RespondWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if claims.Role != security.RoleAdmin || claims.OrgID == 0 {
			RespondWithError(w, http.StatusForbidden, "administrator role required")
			return
		}
		next(w, r)
	}
}
