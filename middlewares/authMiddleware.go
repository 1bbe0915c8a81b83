package middleware

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/FahimDeveloper/restaurant-management-server/helper"
	"github.com/FahimDeveloper/restaurant-management-server/logger"
)

// Context keys to store request information
type contextKey string

const (
	EmailKey     contextKey = "email"
	RequestIDKey contextKey = "request_id"
)

const RequestIDHeader = "X-Request-ID"

type TokenValidator interface {
	ValidateToken(token string) (*helper.SignedDetails, error)
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Authentication rejects requests without a valid bearer token and stores
// the token's email in the request context.
func Authentication(tokens TokenValidator) mux.MiddlewareFunc {
	return authenticate(tokens, bearerToken)
}

// WSAuthentication is Authentication for websocket handshakes. Browsers
// cannot set headers there, so the query parameter "token" is accepted as
// well.
func WSAuthentication(tokens TokenValidator) mux.MiddlewareFunc {
	return authenticate(tokens, func(r *http.Request) (string, bool) {
		if r.Header.Get("Authorization") != "" {
			return bearerToken(r)
		}
		token := r.URL.Query().Get("token")
		return token, token != ""
	})
}

func authenticate(tokens TokenValidator, extract func(*http.Request) (string, bool)) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extract(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	clientToken := r.Header.Get("Authorization")
	if clientToken == "" {
		return "", false
	}

	// Token format should be "Bearer <token>"
	tokenParts := strings.Split(clientToken, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}
	return tokenParts[1], true
}

// RequireSelf only lets a caller act on the path variable param when it
// names the caller's own email.
func RequireSelf(param string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mux.Vars(r)[param] != GetEmail(r) {
				writeError(w, http.StatusForbidden, "forbidden access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin checks the stored role of the authenticated caller. It must
// run after Authentication.
func RequireAdmin(users AdminChecker, log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r)
			ok, err := users.IsAdmin(r.Context(), email)
			if err != nil {
				log.Error("require_admin", GetRequestID(r), "role lookup failed", err, slog.String("email", email))
				writeError(w, http.StatusInternalServerError, "could not verify role")
				return
			}
			if !ok {
				writeError(w, http.StatusForbidden, "forbidden access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// Hijack keeps websocket upgrades working behind the recorder.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// RequestLogger tags each request with an id and logs it once served.
func RequestLogger(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			next.ServeHTTP(rec, r.WithContext(ctx))

			log.Info("http_request", requestID, r.Method+" "+r.URL.Path,
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// GetEmail returns the email the Authentication middleware stored.
func GetEmail(r *http.Request) string {
	email, _ := r.Context().Value(EmailKey).(string)
	return email
}

func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(RequestIDKey).(string)
	return id
}
