//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds the OpenTelemetry instruments used by the
// augmentation packages. Instruments are noop until telemetry/metric
// installs a real meter provider.
package telemetry

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcDial is a package-level variable to allow test injection of a custom dialer.
var grpcDial = grpc.NewClient

// telemetry service constants.
const (
	ServiceName      = "trpc-augment-go"
	ServiceVersion   = "v0.1.0"
	ServiceNamespace = "trpc-go-augment"
	InstrumentName   = "trpc.augment.go"

	MeterNameAugment = "trpc_augment_go.augment"

	MetricGateDecisionCnt     = "trpc_augment_go.transform.gate_cnt"
	MetricTranslateRequestCnt = "trpc_augment_go.translate.request_cnt"
	MetricTranslateDuration   = "trpc_augment_go.translate.duration"

	KeyTransformName  = "trpc_augment_go.transform.name"
	KeyGateFired      = "trpc_augment_go.transform.fired"
	KeySourceLanguage = "trpc_augment_go.translate.source"
	KeyTargetLanguage = "trpc_augment_go.translate.target"
	KeyTextChars      = "trpc_augment_go.translate.chars"
	KeyErrorType      = "error.type"

	OperationTranslate = "translate"
)

const (
	// ProtocolGRPC uses gRPC protocol for OTLP exporter.
	ProtocolGRPC string = "grpc"
	// ProtocolHTTP uses HTTP protocol for OTLP exporter.
	ProtocolHTTP string = "http"
)

// NewGRPCConn creates an insecure gRPC connection to an OTLP collector.
func NewGRPCConn(endpoint string) (*grpc.ClientConn, error) {
	conn, err := grpcDial(endpoint,
		// Note the use of insecure transport here. TLS is recommended in production.
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}
	return conn, nil
}
