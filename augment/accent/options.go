//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package accent

import (
	"net/http"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/dictionary"
)

// HTTPClient is the interface for the HTTP client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type options struct {
	dict       map[string]string
	url        string
	httpClient HTTPClient
	level      augment.Level
	boundaries string
	strict     bool
	p          float64
	rand       *augment.Rand
}

// Option configures an Accent transform.
type Option func(*options)

// WithDictionary supplies the American-to-British table directly and skips the download.
func WithDictionary(m map[string]string) Option {
	return func(o *options) {
		o.dict = m
	}
}

// WithDictionaryURL sets where the table is downloaded from.
func WithDictionaryURL(url string) Option {
	return func(o *options) {
		o.url = url
	}
}

// WithHTTPClient sets the client used for the download.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithLevel selects text (the default) or word gating.
func WithLevel(level augment.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithBoundaries sets the characters that may flank a dictionary entry.
func WithBoundaries(set string) Option {
	return func(o *options) {
		o.boundaries = set
	}
}

// WithStrict rejects tables whose values are not unique.
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
	o := options{
		url:        dictionary.BritishSpellingsURL,
		level:      augment.LevelText,
		boundaries: dictionary.DefaultBoundaries,
		p:          0.5,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
