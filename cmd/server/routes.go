// Package server assembles the aws-arn HTTP API: routing, middleware,
// and the handler dependencies.
package server

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/benkehoe/aws-arn/api"
	"github.com/benkehoe/aws-arn/internal/middleware"
	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/healthcheck"
	"github.com/benkehoe/aws-arn/pkg/rules"
)

// APIConfig is the configuration struct to build the API handlers.
type APIConfig struct {
	Shutdown chan os.Signal
	Log      *zap.SugaredLogger
	Tracer   trace.Tracer
	Token    string
	Builder  *arn.Builder
	Rules    *rules.Ruleset
	Health   *healthcheck.HealthCheck
}

// API constructs an http.Handler with all application routes defined.
func API(cfg *APIConfig) http.Handler {

	// Construct the App which holds all routes as well as common middleware.
	app := NewApp(cfg.Shutdown, cfg.Log)

	// Register the health check endpoint. This route is not authenticated.
	app.Get("/api/v1/health", cfg.Health.Handler().ServeHTTP)

	handlers := api.Handlers{
		Log:     cfg.Log,
		Tracer:  cfg.Tracer,
		Builder: cfg.Builder,
		Rules:   cfg.Rules,
	}

	// Main application routes
	app.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.RequestID)
		r.Use(chiMiddleware.RealIP)
		r.Use(middleware.Logger(cfg.Log.Desugar()))
		r.Use(chiMiddleware.Recoverer)
		r.Use(chiMiddleware.Timeout(30 * time.Second))
		r.Use(middleware.Tracing)
		r.Use(middleware.TokenAuth(cfg.Token))

		r.Route("/arn", func(r chi.Router) {
			r.Post("/", handlers.Build)
			r.Post("/split", handlers.Split)
		})

		r.Post("/resolve", handlers.Resolve)
		r.Post("/cloudformation", handlers.CloudFormation)
		r.Post("/terraform", handlers.Terraform)

		r.Get("/rules", handlers.ListRules)
	})

	return app
}
