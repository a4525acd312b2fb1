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
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer resolves through the global tracer provider, so spans start
// recording once telemetry/trace installs a provider.
var Tracer trace.Tracer = otel.Tracer(InstrumentName)

// NewTranslateSpanName creates a span name such as "translate en->fr".
func NewTranslateSpanName(source, target string) string {
	return fmt.Sprintf("%s %s->%s", OperationTranslate, source, target)
}

// StartTranslateSpan opens a span around one external translation call.
func StartTranslateSpan(ctx context.Context, source, target string, chars int) (context.Context, trace.Span) {
	return Tracer.Start(ctx, NewTranslateSpanName(source, target),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(KeySourceLanguage, source),
			attribute.String(KeyTargetLanguage, target),
			attribute.Int(KeyTextChars, chars),
		))
}

// EndSpan records err on span (if any) and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(KeyErrorType, ToErrorType(err)))
	}
	span.End()
}

// ToErrorType maps an error to a low-cardinality attribute value.
func ToErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline_exceeded"
	default:
		return "error"
	}
}
