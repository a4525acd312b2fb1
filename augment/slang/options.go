//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package slang

import (
	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/dictionary"
)

type options struct {
	level       augment.Level
	dict        map[string]string
	fullToSlang bool
	boundaries  string
	strict      bool
	p           float64
	rand        *augment.Rand
}

// Option configures a Slang transform.
type Option func(*options)

// WithLevel selects text (one decision per call, the default) or word
// (one decision per dictionary entry).
func WithLevel(level augment.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithDictionary replaces the bundled contractions table. Keys are the
// short forms and values their expansions.
func WithDictionary(m map[string]string) Option {
	return func(o *options) {
		o.dict = m
	}
}

// WithFullToSlang also contracts expansions whose short form did not fire.
func WithFullToSlang(enabled bool) Option {
	return func(o *options) {
		o.fullToSlang = enabled
	}
}

// WithBoundaries sets the characters that may flank a dictionary entry.
func WithBoundaries(set string) Option {
	return func(o *options) {
		o.boundaries = set
	}
}

// WithStrict rejects dictionaries whose values are not unique.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
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

func newOptions(opts []Option) options {
	o := options{level: augment.LevelText, boundaries: dictionary.DefaultBoundaries, p: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
