package tracing

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// NewTracerProvider builds a development TracerProvider over processor,
// e.g. sdktrace.NewSimpleSpanProcessor wrapping any trace.SpanExporter
// the caller wants spans shipped to. It exists so a caller doesn't need
// to reach into go.opentelemetry.io/otel/sdk/trace directly just to get
// a Tracer for WithTracer.
func NewTracerProvider(processor sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(processor))
}

// otelTracer adapts an OpenTelemetry trace.Tracer to this package's
// Tracer. The parser has no context.Context of its own — it is
// synchronous and recursive with no cancellation model — so spans are
// opened against context.Background(); a caller wanting spans parented
// to a request context should use the OpenTelemetry SDK directly around
// the call to packrat.Parse instead.
type otelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer wraps an OpenTelemetry tracer (typically obtained via
// provider.Tracer("packrat")) as a packrat Tracer.
func NewOTelTracer(t trace.Tracer) Tracer {
	return otelTracer{tracer: t}
}

func (o otelTracer) StartSpan(name string) func() {
	_, span := o.tracer.Start(context.Background(), name)
	return func() { span.End() }
}
