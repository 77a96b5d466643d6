package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

// Logger is a middleware that logs each request once served, along with
// what was requested, the response status, and how long it took.
func Logger(l *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()

			defer func() {
				l.Info("served",
					zap.String("method", r.Method),
					zap.String("request", r.RequestURI),
					zap.Int("status", ww.Status()),
					zap.Duration("took", time.Since(start)),
					zap.Int("size", ww.BytesWritten()),
					zap.String("proto", r.Proto),
					zap.String("remote", r.RemoteAddr),
					zap.String("reqId", middleware.GetReqID(r.Context())))
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
