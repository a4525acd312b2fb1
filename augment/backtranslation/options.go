//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package backtranslation

import (
	"context"
	"time"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/segment"
	"trpc.group/trpc-go/trpc-augment-go/translator"
)

const (
	defaultSourceLanguage = "en"
	defaultTargetLanguage = "fr"
	defaultDelay          = time.Second
	defaultMaxLength      = 5000
)

// Sleeper pauses for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

type options struct {
	translator        translator.Translator
	source, target    string
	delay             time.Duration
	segmentDelay      time.Duration
	translationsDelay time.Duration
	maxLength         int
	segmenter         segment.Segmenter
	sleep             Sleeper
	p                 float64
	rand              *augment.Rand
}

// Option configures a BackTranslation transform.
type Option func(*options)

// WithTranslator sets the translation backend. Required.
func WithTranslator(t translator.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithSourceLanguage sets the language of the input text.
func WithSourceLanguage(code string) Option {
	return func(o *options) {
		o.source = code
	}
}

// WithTargetLanguage sets the pivot language.
func WithTargetLanguage(code string) Option {
	return func(o *options) {
		o.target = code
	}
}

// WithDelay sets the pause after each item of ApplyMany.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// WithSegmentDelay sets the pause after each per-sentence call of a long text.
func WithSegmentDelay(d time.Duration) Option {
	return func(o *options) {
		o.segmentDelay = d
	}
}

// WithTranslationsDelay sets the pause between the forward and the reverse pass.
func WithTranslationsDelay(d time.Duration) Option {
	return func(o *options) {
		o.translationsDelay = d
	}
}

// WithMaxLength sets the character count from which a text is translated
// sentence by sentence.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// WithSegmenter replaces the default English segmenter.
func WithSegmenter(s segment.Segmenter) Option {
	return func(o *options) {
		o.segmenter = s
	}
}

// WithSleeper replaces the pacing sleep, mostly for tests.
func WithSleeper(s Sleeper) Option {
	return func(o *options) {
		o.sleep = s
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
