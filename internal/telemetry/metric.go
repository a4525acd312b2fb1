//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	MeterProvider metric.MeterProvider = noop.NewMeterProvider()

	AugmentMeter               metric.Meter            = MeterProvider.Meter(MeterNameAugment)
	AugmentGateDecisionCnt     metric.Int64Counter     = noop.Int64Counter{}
	AugmentTranslateRequestCnt metric.Int64Counter     = noop.Int64Counter{}
	AugmentTranslateDuration   metric.Float64Histogram = noop.Float64Histogram{}
)

// RecordGate counts one outer gate decision of a transform.
func RecordGate(ctx context.Context, transform string, fired bool) {
	AugmentGateDecisionCnt.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String(KeyTransformName, transform),
			attribute.Bool(KeyGateFired, fired),
		))
}

// RecordTranslate counts one external translation call and records its latency.
func RecordTranslate(ctx context.Context, source, target string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String(KeySourceLanguage, source),
		attribute.String(KeyTargetLanguage, target),
	}
	if err != nil {
		attrs = append(attrs, attribute.String(KeyErrorType, ToErrorType(err)))
	}
	AugmentTranslateRequestCnt.Add(ctx, 1, metric.WithAttributes(attrs...))
	AugmentTranslateDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
