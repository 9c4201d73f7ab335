package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("statlines/internal/usecase")

// startUsecaseSpan opens a child span when the caller already carries a
// recording span; otherwise the context passes through untouched.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) != "" && trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return usecaseTracer.Start(ctx, name)
	}
	return ctx, trace.SpanFromContext(context.Background())
}
