//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package crop keeps a random window of consecutive sentences.
package crop

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/log"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

// Name is the transform name.
const Name = "Crop"

// Crop keeps the sentences around a random pivot.
type Crop struct {
	gate         augment.Gate
	left, right  int
	minSentences int
	segmenter    segment.Segmenter
}

// New creates a Crop transform. Defaults: one sentence on each side, a
// margin of one sentence, p = 0.5.
func New(opts ...Option) (*Crop, error) {
	o := options{left: 1, right: 1, minSentences: 1, p: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	if o.left < 0 || o.right < 0 {
		return nil, fmt.Errorf("size (%d, %d) is negative: %w", o.left, o.right, augment.ErrConfiguration)
	}
	if o.minSentences < 0 {
		return nil, fmt.Errorf("min sentences %d is negative: %w", o.minSentences, augment.ErrConfiguration)
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
	return &Crop{
		gate:         gate.Named(Name),
		left:         o.left,
		right:        o.right,
		minSentences: o.minSentences,
		segmenter:    o.segmenter,
	}, nil
}

// Name implements augment.Transform.
func (c *Crop) Name() string { return Name }

// Transform returns the window around a pivot drawn from [m, n-1-m],
// joined with single spaces. Texts with fewer than 2m+1 sentences fail
// with augment.ErrRange.
func (c *Crop) Transform(ctx context.Context, text string) (string, error) {
	sentences := c.segmenter.Sentences(text)
	n := len(sentences)
	if n < 2*c.minSentences+1 {
		return "", fmt.Errorf("crop needs at least %d sentences, got %d: %w", 2*c.minSentences+1, n, augment.ErrRange)
	}
	pivot := c.minSentences + c.gate.Rand(ctx).IntN(n-2*c.minSentences)
	start := max(0, pivot-c.left)
	end := min(n, pivot+c.right+1)
	log.Debugf("crop: pivot %d of %d sentences, window [%d, %d)", pivot, n, start, end)
	return strings.Join(sentences[start:end], " "), nil
}

// ApplyOne implements augment.Applier.
func (c *Crop) ApplyOne(ctx context.Context, text string) (string, error) {
	return c.gate.Apply(ctx, text, c.Transform)
}

// ApplyMany implements augment.Applier.
func (c *Crop) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, c.ApplyOne)
}
