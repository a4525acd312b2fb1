//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	itelemetry "trpc.group/trpc-go/trpc-augment-go/internal/telemetry"
)

func TestMetricsEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "custom-metric:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "generic-endpoint:4318")
	assert.Equal(t, "custom-metric:4318", metricsEndpoint("grpc"))

	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")
	assert.Equal(t, "generic-endpoint:4318", metricsEndpoint("grpc"))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	assert.Equal(t, "localhost:4317", metricsEndpoint("grpc"))
	assert.Equal(t, "localhost:4318", metricsEndpoint("http"))
}

func TestInitMeterProviderRecordsGateDecisions(t *testing.T) {
	old := itelemetry.MeterProvider
	t.Cleanup(func() {
		require.NoError(t, InitMeterProvider(old))
	})

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	require.NoError(t, InitMeterProvider(mp))
	assert.Equal(t, mp, GetMeterProvider())

	ctx := context.Background()
	itelemetry.RecordGate(ctx, "CutOut", true)
	itelemetry.RecordGate(ctx, "CutOut", false)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var found bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != itelemetry.MetricGateDecisionCnt {
			continue
		}
		found = true
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		var total int64
		for _, dp := range sum.DataPoints {
			total += dp.Value
		}
		assert.Equal(t, int64(2), total)
	}
	assert.True(t, found)
}

func TestInitMeterProviderNil(t *testing.T) {
	assert.Error(t, InitMeterProvider(nil))
}

func TestNewMeterProviderHTTP(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(),
		WithProtocol("http"),
		WithEndpoint("localhost:4318"),
		WithServiceName("augment-test"),
	)
	require.NoError(t, err)
	require.NotNil(t, mp)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = mp.Shutdown(ctx)
}
