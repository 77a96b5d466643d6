// Package tracing wires up OpenTelemetry tracing for the aws-arn
// server. Tracing is off by default and exports over OTLP gRPC when
// enabled.
package tracing

import (
	"context"
	"flag"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

type TracingFactory struct {
	Enabled  bool
	Endpoint string
}

func NewFactory() *TracingFactory {
	return &TracingFactory{}
}

func (f *TracingFactory) AddFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Enabled, "tracing-enabled", false, "enable OpenTelemetry tracing")
	fs.StringVar(&f.Endpoint, "tracing-endpoint", "localhost:4317", "OTLP gRPC endpoint to export spans to")
}

// InitializeTracer returns a tracer for the server, a no-op one unless
// tracing is enabled.
func (f *TracingFactory) InitializeTracer(ctx context.Context) (trace.Tracer, error) {
	if !f.Enabled {
		return trace.NewNoopTracerProvider().Tracer(""), nil
	}
	if err := f.setupOtel(ctx); err != nil {
		return nil, err
	}
	return otel.Tracer("github.com/benkehoe/aws-arn"), nil
}

// setupOtel registers a global tracer provider exporting to the
// configured OTLP endpoint.
func (f *TracingFactory) setupOtel(ctx context.Context) error {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("aws-arn-server"),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create resource")
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithDialOption(grpc.FailOnNonTempDialError(true)),
		otlptracegrpc.WithEndpoint(f.Endpoint),
		otlptracegrpc.WithDialOption(grpc.WithReturnConnectionError()),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create trace exporter")
	}

	// batch spans before export rather than sending them one at a time
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tracerProvider)

	// the default propagator is a no-op
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return nil
}
