//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package backtranslation paraphrases text by translating it to a pivot
// language and back.
package backtranslation

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	itelemetry "trpc.group/trpc-go/trpc-augment-go/internal/telemetry"
	"trpc.group/trpc-go/trpc-augment-go/log"
	"trpc.group/trpc-go/trpc-augment-go/segment"
	"trpc.group/trpc-go/trpc-augment-go/translator"
)

// Name is the transform name.
const Name = "BackTranslation"

// BackTranslation round-trips text through an external translator.
type BackTranslation struct {
	gate              augment.Gate
	translator        translator.Translator
	source, target    string
	delay             time.Duration
	segmentDelay      time.Duration
	translationsDelay time.Duration
	maxLength         int
	segmenter         segment.Segmenter
	sleep             Sleeper
}

// New creates a BackTranslation transform. Defaults: en -> fr -> en, one
// second for every pause, 5000 characters before sentence splitting.
func New(opts ...Option) (*BackTranslation, error) {
	o := options{
		source:            defaultSourceLanguage,
		target:            defaultTargetLanguage,
		delay:             defaultDelay,
		segmentDelay:      defaultDelay,
		translationsDelay: defaultDelay,
		maxLength:         defaultMaxLength,
		sleep:             Sleep,
		p:                 0.5,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.translator == nil {
		return nil, fmt.Errorf("translator is required: %w", augment.ErrConfiguration)
	}
	if o.source == "" || o.target == "" {
		return nil, fmt.Errorf("languages %q -> %q must be set: %w", o.source, o.target, augment.ErrConfiguration)
	}
	if o.maxLength <= 0 {
		return nil, fmt.Errorf("max length %d must be positive: %w", o.maxLength, augment.ErrConfiguration)
	}
	if o.delay < 0 || o.segmentDelay < 0 || o.translationsDelay < 0 {
		return nil, fmt.Errorf("delays must not be negative: %w", augment.ErrConfiguration)
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
	if o.sleep == nil {
		o.sleep = Sleep
	}
	return &BackTranslation{
		gate:              gate.Named(Name),
		translator:        o.translator,
		source:            o.source,
		target:            o.target,
		delay:             o.delay,
		segmentDelay:      o.segmentDelay,
		translationsDelay: o.translationsDelay,
		maxLength:         o.maxLength,
		segmenter:         o.segmenter,
		sleep:             o.sleep,
	}, nil
}

// Sleep waits for d and returns early with ctx.Err() when ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Name implements augment.Transform.
func (b *BackTranslation) Name() string { return Name }

// Pace implements augment.Pacer with the delay ApplyMany waits after each item.
func (b *BackTranslation) Pace() time.Duration { return b.delay }

// Translate translates text from source to target. Texts of at least the
// maximum length are translated sentence by sentence with a pause after
// each call, and the translated sentences are joined back.
func (b *BackTranslation) Translate(ctx context.Context, text, source, target string) (string, error) {
	if utf8.RuneCountInString(text) < b.maxLength {
		return b.call(ctx, text, source, target)
	}
	sentences := b.segmenter.Sentences(text)
	log.Debugf("backtranslation: %s->%s split into %d segments", source, target, len(sentences))
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		translated, err := b.call(ctx, s, source, target)
		if err != nil {
			return "", err
		}
		out = append(out, translated)
		if err := b.sleep(ctx, b.segmentDelay); err != nil {
			return "", err
		}
	}
	return segment.Join(out), nil
}

func (b *BackTranslation) call(ctx context.Context, text, source, target string) (string, error) {
	ctx, span := itelemetry.StartTranslateSpan(ctx, source, target, utf8.RuneCountInString(text))
	start := time.Now()
	out, err := b.translator.Translate(ctx, text, source, target)
	itelemetry.RecordTranslate(ctx, source, target, time.Since(start), err)
	itelemetry.EndSpan(span, err)
	if err != nil {
		return "", fmt.Errorf("translate %s->%s: %w: %w", source, target, augment.ErrTranslation, err)
	}
	return out, nil
}

// BackTranslate returns the round-tripped text and the intermediate
// translation.
func (b *BackTranslation) BackTranslate(ctx context.Context, text string) (back, intermediate string, err error) {
	intermediate, err = b.Translate(ctx, text, b.source, b.target)
	if err != nil {
		return "", "", err
	}
	if err = b.sleep(ctx, b.translationsDelay); err != nil {
		return "", "", err
	}
	back, err = b.Translate(ctx, intermediate, b.target, b.source)
	if err != nil {
		return "", "", err
	}
	return back, intermediate, nil
}

// Transform implements augment.Transform.
func (b *BackTranslation) Transform(ctx context.Context, text string) (string, error) {
	back, _, err := b.BackTranslate(ctx, text)
	return back, err
}

// ApplyOne implements augment.Applier.
func (b *BackTranslation) ApplyOne(ctx context.Context, text string) (string, error) {
	return b.gate.Apply(ctx, text, b.Transform)
}

// ApplyMany applies ApplyOne to each text and pauses after every item.
func (b *BackTranslation) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, text := range texts {
		res, err := b.ApplyOne(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = res
		if err := b.sleep(ctx, b.delay); err != nil {
			return nil, err
		}
	}
	return out, nil
}
