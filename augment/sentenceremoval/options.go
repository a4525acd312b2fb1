//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package sentenceremoval

import (
	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

type options struct {
	k         int
	p         float64
	rand      *augment.Rand
	segmenter segment.Segmenter
}

// Option configures a SentenceRemoval transform.
type Option func(*options)

// WithNumSentences sets how many sentences are removed.
func WithNumSentences(k int) Option {
	return func(o *options) {
		o.k = k
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
