//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package augment

import (
	"context"
	"fmt"
	"math"

	itelemetry "trpc.group/trpc-go/trpc-augment-go/internal/telemetry"
)

// Gate decides whether a transform fires for a given call.
type Gate struct {
	p    float64
	rand *Rand
	name string
}

// NewGate returns a gate that fires with probability p. A nil r selects DefaultRand.
func NewGate(p float64, r *Rand) (Gate, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Gate{}, fmt.Errorf("probability %v outside [0, 1]: %w", p, ErrConfiguration)
	}
	if r == nil {
		r = DefaultRand()
	}
	return Gate{p: p, rand: r}, nil
}

// Named returns a copy of g that reports its decisions under name.
func (g Gate) Named(name string) Gate {
	g.name = name
	return g
}

// P returns the firing probability.
func (g Gate) P() float64 { return g.p }

// Rand returns the source carried by ctx, or the gate's own source when
// ctx carries none.
func (g Gate) Rand(ctx context.Context) *Rand {
	if r := RandFromContext(ctx); r != nil {
		return r
	}
	if g.rand == nil {
		return DefaultRand()
	}
	return g.rand
}

// Fire draws once and reports whether the draw is below p.
func (g Gate) Fire(ctx context.Context) bool {
	return g.Rand(ctx).Float64() < g.p
}

// Apply runs fn on text when the gate fires and returns text unchanged otherwise.
func (g Gate) Apply(ctx context.Context, text string, fn TransformFunc) (string, error) {
	return g.Run(ctx, text, false, fn)
}

// Run is Apply with a bypass: when force is set fn runs without a draw.
func (g Gate) Run(ctx context.Context, text string, force bool, fn TransformFunc) (string, error) {
	if force {
		return fn(ctx, text)
	}
	fired := g.Fire(ctx)
	itelemetry.RecordGate(ctx, g.name, fired)
	if !fired {
		return text, nil
	}
	return fn(ctx, text)
}
