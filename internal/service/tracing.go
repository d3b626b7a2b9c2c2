package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"employee-api/internal/auth"
)

var tracer = otel.Tracer("employee-api/service")

func startSpan(ctx context.Context, op string, id *auth.Identity) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "service."+op)
	if id != nil {
		span.SetAttributes(attribute.String("user.id", id.ID), attribute.String("user.role", id.Role))
	}
	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
