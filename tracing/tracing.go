// Package tracing provides OpenTelemetry tracing for the CLABE MCP server.
// It configures trace exporters and provides utilities for creating spans.
package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/olgasafonova/clabe-mcp-server/internal/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "clabe-mcp-server"
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string // If set, uses OTLP exporter; otherwise stdout
	SampleRate     float64

	// CatalogVersion tags every span with the bank/plaza data release it was served from.
	CatalogVersion string

	// Exporter overrides the OTLP/stdout choice when set.
	Exporter sdktrace.SpanExporter
}

// DefaultConfig returns the configuration read from the OTEL_* environment variables
func DefaultConfig() Config {
	return Config{
		ServiceName:    TracerName,
		ServiceVersion: "1.0.0",
		Environment:    getEnvOrDefault("OTEL_ENVIRONMENT", "development"),
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRate:     1.0,
		CatalogVersion: catalog.DataVersion,
	}
}

// Setup installs the global tracer provider and returns its shutdown function.
// It is a no-op when tracing is disabled.
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	exporter, err := newExporter(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("tracing exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// newResource describes the server. The schema URL comes from the semconv
// package matching the SDK so detector output merges cleanly.
func newResource(ctx context.Context, config Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.ServiceVersion),
		attribute.String("environment", config.Environment),
	}
	if config.CatalogVersion != "" {
		attrs = append(attrs, attribute.String("clabe.catalog.version", config.CatalogVersion))
	}
	return resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(attrs...),
	)
}

func newExporter(ctx context.Context, config Config) (sdktrace.SpanExporter, error) {
	switch {
	case config.Exporter != nil:
		return config.Exporter, nil
	case config.OTLPEndpoint != "":
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(config.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	default:
		// stdout carries the MCP stdio protocol
		return stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	}
}

func newSampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Tracer returns the named tracer for the server
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts a new span with the given name and returns the context and span
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// AddToolAttributes adds standard tool attributes to a span
func AddToolAttributes(span trace.Span, toolName, category string) {
	span.SetAttributes(
		attribute.String("mcp.tool.name", toolName),
		attribute.String("mcp.tool.category", category),
	)
}

// AddCatalogAttributes adds catalog lookup attributes to a span
func AddCatalogAttributes(span trace.Span, table string, code int) {
	span.SetAttributes(
		attribute.String("clabe.catalog.table", table),
		attribute.Int("clabe.catalog.code", code),
	)
}

// AddValidationAttributes records the outcome of a CLABE validation.
// An empty kind means the number was valid.
func AddValidationAttributes(span trace.Span, kind string, formatOK bool) {
	span.SetAttributes(
		attribute.Bool("clabe.valid", kind == ""),
		attribute.Bool("clabe.format_ok", formatOK),
	)
	if kind != "" {
		span.SetAttributes(attribute.String("clabe.error_kind", kind))
	}
}

// RecordError records an error on the span
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
