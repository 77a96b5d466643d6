package middleware

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.opentelemetry.io/otel/trace"
)

// Tracing names the OpenTelemetry span generated for the http.Handler
// after the chi route pattern, so spans group by route rather than by
// raw URL.
func Tracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		rctx := chi.RouteContext(r.Context())
		span := trace.SpanFromContext(r.Context())
		span.SetName(rctx.RoutePattern())
	}
	return http.HandlerFunc(fn)
}
