//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package crop

import (
	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

type options struct {
	left, right  int
	minSentences int
	p            float64
	rand         *augment.Rand
	segmenter    segment.Segmenter
}

// Option configures a Crop transform.
type Option func(*options)

// WithSize sets how many sentences to keep on each side of the pivot.
func WithSize(left, right int) Option {
	return func(o *options) {
		o.left, o.right = left, right
	}
}

// WithMinSentences sets the margin m: the pivot is drawn from [m, n-1-m].
func WithMinSentences(m int) Option {
	return func(o *options) {
		o.minSentences = m
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
