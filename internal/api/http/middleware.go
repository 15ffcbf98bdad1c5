package http

import (
	"database/sql"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository"
	"velvetden-backend/internal/security"
)

type middleware struct {
	tokens         security.TokenManager
	users          repository.UserRepository
	allowedOrigins []string
}

// authenticate validates the bearer token and loads the full user record
// onto the request context. Routes behind it can assume userFrom is non-nil.
func (m *middleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "Missing or malformed Authorization header")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			if errors.Is(err, security.ErrExpiredToken) {
				writeError(w, http.StatusUnauthorized, "Token has expired")
				return
			}
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := m.users.GetByEmail(r.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Token outlived the account.
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// requireAdmin must run after authenticate.
func (m *middleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFrom(r.Context())
		if user == nil || !user.IsAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *middleware) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (slices.Contains(m.allowedOrigins, "*") || slices.Contains(m.allowedOrigins, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
