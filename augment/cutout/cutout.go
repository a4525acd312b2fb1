//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package cutout deletes a random share of the words or sentences of a text.
package cutout

import (
	"context"
	"fmt"
	"math"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

// Name is the transform name.
const Name = "CutOut"

// CutOut removes ceil(fraction*n) randomly chosen segments.
type CutOut struct {
	gate      augment.Gate
	level     augment.Level
	fraction  float64
	segmenter segment.Segmenter
}

// New creates a CutOut transform.
func New(opts ...Option) (*CutOut, error) {
	o := options{level: augment.LevelWord, fraction: defaultFraction, p: defaultProbability}
	for _, opt := range opts {
		opt(&o)
	}
	if err := augment.ValidateLevel(o.level, augment.LevelWord, augment.LevelSentence); err != nil {
		return nil, err
	}
	if math.IsNaN(o.fraction) || o.fraction < 0 || o.fraction > 1 {
		return nil, fmt.Errorf("fraction %v outside [0, 1]: %w", o.fraction, augment.ErrConfiguration)
	}
	gate, err := augment.NewGate(o.p, o.rand)
	if err != nil {
		return nil, err
	}
	if o.segmenter == nil {
		if o.segmenter, err = segment.Default(); err != nil {
			return nil, fmt.Errorf("load segmenter: %v: %w", err, augment.ErrConfiguration)
		}
	}
	return &CutOut{gate: gate.Named(Name), level: o.level, fraction: o.fraction, segmenter: o.segmenter}, nil
}

// Name implements augment.Transform.
func (c *CutOut) Name() string { return Name }

// Transform deletes the sampled segments and joins the survivors in order.
func (c *CutOut) Transform(ctx context.Context, text string) (string, error) {
	var parts []string
	if c.level == augment.LevelSentence {
		parts = c.segmenter.Sentences(text)
	} else {
		parts = c.segmenter.Words(text)
	}
	n := len(parts)
	if n == 0 {
		return "", nil
	}
	k := int(math.Ceil(c.fraction * float64(n)))
	drop := make(map[int]struct{}, k)
	for _, i := range c.gate.Rand(ctx).Sample(n, k) {
		drop[i] = struct{}{}
	}
	kept := make([]string, 0, n-len(drop))
	for i, p := range parts {
		if _, ok := drop[i]; !ok {
			kept = append(kept, p)
		}
	}
	return segment.Join(kept), nil
}

// ApplyOne implements augment.Applier.
func (c *CutOut) ApplyOne(ctx context.Context, text string) (string, error) {
	return c.gate.Apply(ctx, text, c.Transform)
}

// ApplyMany implements augment.Applier.
func (c *CutOut) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, c.ApplyOne)
}
