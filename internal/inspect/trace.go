package inspect

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for the inspector.
const defaultTracerName = "sift/inspect"

// startQuerySpan starts a span covering one selector query evaluation.
//
// The tracer comes from the global OpenTelemetry provider; without a
// configured provider the span is a no-op.
func startQuerySpan(ctx context.Context, tracer trace.Tracer, snapshot, selector string) (context.Context, trace.Span) {
	return tracer.Start(
		ctx,
		"inspect.query",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("sift.snapshot", snapshot),
			attribute.String("sift.selector", selector),
		),
	)
}

// endQuerySpan records the query result and ends the span.
func endQuerySpan(span trace.Span, matches int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
		span.SetAttributes(attribute.Int("sift.match_count", matches))
	}
	span.End()
}
