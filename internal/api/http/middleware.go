package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/observability"
	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
)

type contextKey string

const callerContextKey contextKey = "caller"

// callerFromContext returns the authenticated caller. The zero Caller is
// returned on public routes where the auth middleware did not run.
func callerFromContext(ctx context.Context) security.Caller {
	caller, _ := ctx.Value(callerContextKey).(security.Caller)
	return caller
}

// staffOnly refuses member-tier callers. Back-office handlers run it before
// touching the service; the answer is the same opaque denial as everywhere
// else.
func staffOnly(w http.ResponseWriter, r *http.Request) bool {
	if callerFromContext(r.Context()).IsMember() {
		writeError(w, apperrors.New(apperrors.AccessDenied))
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogging tags every request with an id and records latency and
// status, both in the log and in the Prometheus counters.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := routeTemplate(r)
		elapsed := time.Since(start)
		observability.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		observability.HTTPRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Observe(elapsed.Seconds())
		logger.Info("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}

// routeTemplate keeps metric labels low-cardinality by using the mux route
// pattern instead of the raw path.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}

func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic while handling request", "path", r.URL.Path, "panic", rec)
				writeError(w, apperrors.New(apperrors.Unexpected))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authenticate validates the bearer token, checks it against the revocation
// store and puts the caller into the request context. Missing, bad and
// logged-out tokens end the request here.
func authenticate(tokens security.TokenManager, sessions repository.TokenRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, apperrors.New(apperrors.Unauthorized))
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			caller, err := tokens.ValidateToken(raw)
			if err != nil {
				writeError(w, apperrors.New(apperrors.Unauthorized))
				return
			}
			active, err := sessions.IsActive(r.Context(), raw)
			if err != nil {
				writeError(w, apperrors.From(err))
				return
			}
			if !active {
				writeError(w, apperrors.New(apperrors.Unauthorized))
				return
			}
			ctx := context.WithValue(r.Context(), callerContextKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
