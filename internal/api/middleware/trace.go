package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tours-api/internal/api/shared"
	"github.com/phrazzld/tours-api/internal/platform/logger"
	"go.opentelemetry.io/otel/trace"
)

// TraceMiddleware adds a trace ID and a request-scoped logger to the request
// context. It should run early so every handler and error response sees both.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := logger.FromContext(ctx)
		// the log handler already adds trace_id for active spans
		if !trace.SpanContextFromContext(ctx).HasTraceID() {
			log = log.With(slog.String("trace_id", traceID))
		}
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
