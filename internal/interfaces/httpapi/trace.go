package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("statlines/internal/interfaces/httpapi")

// startSpan opens a child span under the request span. Helpers on filtered
// routes (no valid parent, e.g. /healthz) and non-handler spans come back
// as the noop span so they never show up as standalone roots.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parentValid := trace.SpanFromContext(ctx).SpanContext().IsValid()
	if parentValid && shouldCreateHTTPAPISpan(name) {
		return apiTracer.Start(ctx, name)
	}
	return ctx, trace.SpanFromContext(context.Background())
}

// Only handler-level spans are worth recording; helper spans would triple
// the span count per request for no added signal.
func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
