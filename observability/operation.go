package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation is a traced unit of work: a span plus its start time.
type Operation struct {
	Name      string
	StartTime time.Time
	span      trace.Span
}

// StartOperation starts a span named spanName for operation name.
func StartOperation(ctx context.Context, spanName, name string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	ctx, span := StartSpan(ctx, spanName, trace.WithAttributes(
		append([]attribute.KeyValue{attribute.String(AttrOperationName, name)}, attrs...)...,
	))
	return ctx, &Operation{Name: name, StartTime: time.Now(), span: span}
}

// Span returns the operation's span.
func (o *Operation) Span() trace.Span { return o.span }

// Duration returns the elapsed time since the operation started.
func (o *Operation) Duration() time.Duration { return time.Since(o.StartTime) }

// End records the duration and outcome on the span and ends it.
func (o *Operation) End(err error) {
	o.span.SetAttributes(attribute.Int64(AttrDurationMs, o.Duration().Milliseconds()))
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	} else {
		o.span.SetStatus(codes.Ok, "")
	}
	o.span.End()
}
