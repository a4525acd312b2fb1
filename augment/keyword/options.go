//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package keyword

import "trpc.group/trpc-go/trpc-augment-go/augment"

type options struct {
	keywords      map[string][]string
	level         augment.Level
	perOccurrence bool
	p             float64
	rand          *augment.Rand
}

// Option configures a Keyword transform.
type Option func(*options)

// WithKeywords sets the keyword to candidate replacements table. Required.
func WithKeywords(m map[string][]string) Option {
	return func(o *options) {
		o.keywords = m
	}
}

// WithLevel selects text (the default) or word gating.
func WithLevel(level augment.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithPerOccurrence draws a decision and a candidate for every occurrence
// instead of once per keyword.
func WithPerOccurrence(enabled bool) Option {
	return func(o *options) {
		o.perOccurrence = enabled
	}
}

// WithProbability sets the firing probability.
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
