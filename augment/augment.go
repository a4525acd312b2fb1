//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package augment defines the transform contract shared by every text
// augmentation, the probabilistic gate and the Compose pipeline.
package augment

import (
	"context"
	"time"
)

// Applier applies an augmentation to one text or to a batch of texts.
type Applier interface {
	// ApplyOne returns the augmented text, or text itself when the gate
	// does not fire.
	ApplyOne(ctx context.Context, text string) (string, error)
	// ApplyMany applies ApplyOne element-wise. The result has the same
	// length and order as texts. The first error aborts the batch.
	ApplyMany(ctx context.Context, texts []string) ([]string, error)
}

// Transform is a named, gated augmentation.
type Transform interface {
	Applier
	// Name returns the transform name used in logs and metrics.
	Name() string
	// Transform runs the augmentation unconditionally.
	Transform(ctx context.Context, text string) (string, error)
}

// Pacer is implemented by appliers that must pause between the items of a
// batch, usually to respect the rate limits of an external service.
type Pacer interface {
	// Pace returns the pause expected after each item.
	Pace() time.Duration
}

// TransformFunc is the signature of an augmentation step.
type TransformFunc func(ctx context.Context, text string) (string, error)

// Identity returns text unchanged.
func Identity(_ context.Context, text string) (string, error) {
	return text, nil
}

// ApplyEach calls fn on every element of texts in order.
func ApplyEach(ctx context.Context, texts []string, fn TransformFunc) ([]string, error) {
	out := make([]string, len(texts))
	for i, text := range texts {
		res, err := fn(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// Func is a Transform backed by a plain function.
type Func struct {
	name string
	gate Gate
	fn   TransformFunc
}

// FromFunc wraps fn in a Transform gated by gate. A nil fn is Identity.
func FromFunc(name string, gate Gate, fn TransformFunc) *Func {
	if fn == nil {
		fn = Identity
	}
	return &Func{name: name, gate: gate.Named(name), fn: fn}
}

// Name implements Transform.
func (f *Func) Name() string { return f.name }

// Transform implements Transform.
func (f *Func) Transform(ctx context.Context, text string) (string, error) {
	return f.fn(ctx, text)
}

// ApplyOne implements Applier.
func (f *Func) ApplyOne(ctx context.Context, text string) (string, error) {
	return f.gate.Apply(ctx, text, f.fn)
}

// ApplyMany implements Applier.
func (f *Func) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return ApplyEach(ctx, texts, f.ApplyOne)
}

type inputKind int

const (
	inputNone inputKind = iota
	inputScalar
	inputBatch
)

// Input is either a single text or a batch of texts. It is part of the
// public API for callers that hold values of either shape. The pipeline
// and the CLI call ApplyOne and ApplyMany directly.
type Input struct {
	kind  inputKind
	text  string
	texts []string
}

// Scalar wraps a single text.
func Scalar(text string) Input {
	return Input{kind: inputScalar, text: text}
}

// Batch wraps a sequence of texts.
func Batch(texts []string) Input {
	return Input{kind: inputBatch, texts: texts}
}

// Text returns the scalar value and whether the input is a scalar.
func (in Input) Text() (string, bool) {
	return in.text, in.kind == inputScalar
}

// Texts returns the batch value and whether the input is a batch.
func (in Input) Texts() ([]string, bool) {
	return in.texts, in.kind == inputBatch
}

// Apply dispatches in to ApplyOne or ApplyMany. The zero Input is returned unchanged.
func Apply(ctx context.Context, a Applier, in Input) (Input, error) {
	switch in.kind {
	case inputScalar:
		out, err := a.ApplyOne(ctx, in.text)
		if err != nil {
			return Input{}, err
		}
		return Scalar(out), nil
	case inputBatch:
		out, err := a.ApplyMany(ctx, in.texts)
		if err != nil {
			return Input{}, err
		}
		return Batch(out), nil
	default:
		return in, nil
	}
}
