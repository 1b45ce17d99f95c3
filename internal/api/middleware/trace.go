package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/classroom-assist/internal/api/shared"
)

// TraceMiddleware puts a trace ID in the request context and echoes it in the
// response header. A trace ID sent by the client is reused; otherwise a new
// one is generated. Apply it early so later handlers can log the ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get(shared.TraceIDHeader); id != "" && len(id) <= 128 {
			ctx = shared.WithTraceID(ctx, id)
		} else {
			ctx = shared.SetTraceID(ctx)
		}
		traceID := shared.GetTraceID(ctx)
		w.Header().Set(shared.TraceIDHeader, traceID)

		slog.DebugContext(ctx, "request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
