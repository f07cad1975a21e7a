// Package telemetry provides OpenTelemetry tracer provider initialization and management.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/hostrt/oslayer/internal/config"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// InitProvider initializes the OpenTelemetry tracer provider with an
// OTLP/HTTP exporter pointed at the configured endpoint.
//
// The HTTP client honors HTTP_PROXY, HTTPS_PROXY, and NO_PROXY through
// Go's standard net/http transport.
func InitProvider(cfg *config.OTELConfig) (*sdktrace.TracerProvider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.GetEndpoint()),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	resourceOpts := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	}
	if customAttrs := cfg.ParseResourceAttributes(); len(customAttrs) > 0 {
		resourceOpts = append(resourceOpts, resource.WithAttributes(customAttrs...))
	}

	res, err := resource.New(ctx, resourceOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return tp, nil
}

// ShutdownProvider gracefully shuts down the tracer provider, flushing any remaining spans.
func ShutdownProvider(tp *sdktrace.TracerProvider, ctx context.Context) error {
	if tp == nil {
		return nil
	}

	if err := tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}
