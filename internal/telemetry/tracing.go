// Package telemetry wraps OpenTelemetry tracing for reductions. Spans go to
// the globally registered TracerProvider, which is a no-op unless the
// embedding program installs one.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans emitted by this module.
const InstrumentationName = "github.com/agbru/parsum"

// Common attribute keys.
const (
	KeyReducer  = attribute.Key("parsum.reducer")
	KeyElements = attribute.Key("parsum.elements")
	KeyChunk    = attribute.Key("parsum.chunk")
	KeyChunks   = attribute.Key("parsum.chunks")
	KeySum      = attribute.Key("parsum.sum")
)

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// StartSpan starts a span named name carrying attrs.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
