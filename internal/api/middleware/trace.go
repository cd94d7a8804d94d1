// Package middleware holds the HTTP middleware specific to this API.
package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/BigBug273/daily-vocab/internal/api/shared"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
)

// TraceHeader carries the trace ID on requests and responses.
const TraceHeader = "X-Trace-ID"

var validTraceID = regexp.MustCompile(`^[A-Za-z0-9-]{8,64}$`)

// Trace returns middleware that assigns each request a trace ID and a logger
// carrying it. A well-formed incoming X-Trace-ID header is reused, otherwise
// a new ID is generated. The ID is echoed in the response header.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if !validTraceID.MatchString(traceID) {
				traceID = shared.NewTraceID()
			}

			log := base.With(slog.String("trace_id", traceID))
			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
