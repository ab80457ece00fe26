package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/tours-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), nil, config.TelemetryConfig{ServiceName: "tours-api"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, ok := StartSpan(context.Background(), "tours.search")
	EndSpan(ok, nil)

	_, failed := StartSpan(context.Background(), "tours.get")
	EndSpan(failed, errors.New("storage unavailable"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "tours.search", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "storage unavailable", spans[1].Status().Description)
	assert.Len(t, spans[1].Events(), 1, "error recorded as span event")
}
