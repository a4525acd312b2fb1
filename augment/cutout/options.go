//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package cutout

import (
	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

const (
	defaultFraction    = 0.01
	defaultProbability = 0.5
)

type options struct {
	level     augment.Level
	fraction  float64
	p         float64
	rand      *augment.Rand
	segmenter segment.Segmenter
}

// Option configures a CutOut transform.
type Option func(*options)

// WithLevel selects word (default) or sentence granularity.
func WithLevel(level augment.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFraction sets the share of segments to delete, in [0, 1].
func WithFraction(f float64) Option {
	return func(o *options) {
		o.fraction = f
	}
}

// WithProbability sets the chance that ApplyOne transforms its input.
func WithProbability(p float64) Option {
	return func(o *options) {
		o.p = p
	}
}

// WithRand sets the random source.
func WithRand(r *augment.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed uses a deterministic random source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = augment.NewRand(seed)
	}
}

// WithSegmenter replaces the default English segmenter.
func WithSegmenter(s segment.Segmenter) Option {
	return func(o *options) {
		o.segmenter = s
	}
}
