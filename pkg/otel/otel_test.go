package otel

import (
	"bytes"
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"userregistry/pkg/logger"
)

func TestAddSpanUsesInjectedTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "addUser", attribute.Int("user.id", 3))
	traceID := GetTraceID(ctx)
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "addUser" {
		t.Fatalf("unexpected span name %q", ended[0].Name())
	}
	if traceID == "" || traceID != ended[0].SpanContext().TraceID().String() {
		t.Fatalf("trace id %q does not match span", traceID)
	}
}

func TestGetTraceIDWithoutSpan(t *testing.T) {
	if id := GetTraceID(context.Background()); id != "" {
		t.Fatalf("expected empty trace id, got %q", id)
	}
}

func TestInitTracingDisabled(t *testing.T) {
	log := logger.New(&bytes.Buffer{}, logger.LevelError, "test", nil)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test"})
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if tp == nil {
		t.Fatal("expected a tracer provider")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
