//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package sentenceremoval drops a fixed number of random sentences.
package sentenceremoval

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

// Name is the transform name.
const Name = "SentenceRemoval"

// SentenceRemoval removes k random sentences.
type SentenceRemoval struct {
	gate      augment.Gate
	k         int
	segmenter segment.Segmenter
}

// New creates a SentenceRemoval transform. Defaults: k = 1, p = 0.5.
func New(opts ...Option) (*SentenceRemoval, error) {
	o := options{k: 1, p: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	if o.k < 0 {
		return nil, fmt.Errorf("num sentences %d is negative: %w", o.k, augment.ErrConfiguration)
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
	return &SentenceRemoval{gate: gate.Named(Name), k: o.k, segmenter: o.segmenter}, nil
}

// Name implements augment.Transform.
func (s *SentenceRemoval) Name() string { return Name }

// Transform removes k sentences when the text has more than k of them and
// returns "" otherwise.
func (s *SentenceRemoval) Transform(ctx context.Context, text string) (string, error) {
	sentences := s.segmenter.Sentences(text)
	n := len(sentences)
	if n <= s.k {
		return "", nil
	}
	drop := make(map[int]struct{}, s.k)
	for _, i := range s.gate.Rand(ctx).Sample(n, s.k) {
		drop[i] = struct{}{}
	}
	kept := make([]string, 0, n-s.k)
	for i, sent := range sentences {
		if _, ok := drop[i]; !ok {
			kept = append(kept, sent)
		}
	}
	return strings.Join(kept, " "), nil
}

// ApplyOne implements augment.Applier.
func (s *SentenceRemoval) ApplyOne(ctx context.Context, text string) (string, error) {
	return s.gate.Apply(ctx, text, s.Transform)
}

// ApplyMany implements augment.Applier.
func (s *SentenceRemoval) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, s.ApplyOne)
}
