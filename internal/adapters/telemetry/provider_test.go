package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/maven3/internal/adapters/telemetry"
	"go.trai.ch/maven3/internal/core/domain"
)

func TestOTelTracer_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerFrom(provider, telemetry.InstrumentationName)

	ctx, span := tracer.Start(context.Background(), "maven3.perform")
	require.NotNil(t, ctx)
	span.SetAttribute("build.name", "job")
	span.SetAttribute("build.number", 7)
	span.SetAttribute("process.exit_code", int64(1))
	span.SetAttribute("recorder", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("goals", []string{"clean", "install"})
	span.SetAttribute("duration", 1500*time.Millisecond)
	span.SetAttribute("result", domain.ResultFailure)
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "maven3.perform", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "boom", got.Status().Description)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range got.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "job", attrs["build.name"].AsString())
	assert.Equal(t, int64(7), attrs["build.number"].AsInt64())
	assert.Equal(t, int64(1), attrs["process.exit_code"].AsInt64())
	assert.True(t, attrs["recorder"].AsBool())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"clean", "install"}, attrs["goals"].AsStringSlice())
	assert.Equal(t, int64(1500), attrs["duration"].AsInt64())
	assert.Equal(t, "FAILURE", attrs["result"].AsString())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
