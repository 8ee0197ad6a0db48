package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := &otelImpl{TracerProvider: provider}

	_, scope := o.NewScope(context.Background(), "test", "test.Op")
	scope.SetAttributes(map[string]any{
		"todo.id":  int64(7),
		"title":    "Pay rent",
		"done":     false,
		"fire.at":  time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		"attempts": 2,
		"interval": 15 * time.Minute,
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "test.Op", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)
	assert.Len(t, span.Attributes(), 6)

	for _, kv := range span.Attributes() {
		if kv.Key == "interval" {
			assert.Equal(t, "15m0s", kv.Value.AsString())
		}
	}

	require.NoError(t, o.Shutdown(context.Background()))
}
