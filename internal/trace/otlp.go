// Package trace records modal visibility changes as OpenTelemetry spans.
//
// Export is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT (or its
// OTEL_EXPORTER_OTLP_TRACES_ENDPOINT override) the provider is nil and every
// tracer it hands out is a no-op.
package trace

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "modalpage/ui"

// Span names and attribute keys for visibility changes.
const (
	SpanOpen    = "modal.open"
	SpanClose   = "modal.close"
	AttrTrigger = "modal.trigger"
)

// Provider owns the SDK tracer provider and its OTLP exporter.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewProvider creates an OTLP-backed provider if an OTLP endpoint is set.
// Returns nil, nil when the endpoint is not configured.
//
// The endpoint is a URL such as http://collector:4318. The exporter reads it
// from the environment itself, along with the other OTEL_EXPORTER_OTLP_*
// settings, and derives TLS from the scheme.
func NewProvider(ctx context.Context) (*Provider, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" &&
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter: %w", err)
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "modalpage"
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}, nil
}

// Tracer returns the provider's tracer, or a no-op tracer on a nil provider.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// RecordTransition emits a zero-length span named name, tagged with the trigger.
// A nil tracer is ignored.
func RecordTransition(ctx context.Context, tracer oteltrace.Tracer, name, trigger string) {
	if tracer == nil {
		return
	}
	_, span := tracer.Start(ctx, name,
		oteltrace.WithAttributes(attribute.String(AttrTrigger, trigger)),
	)
	span.End()
}
