//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package numberwords swaps numerals and English number words.
package numberwords

import (
	"context"
	"fmt"
	"strconv"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/numwords"
	"trpc.group/trpc-go/trpc-augment-go/segment"
)

// Name is the transform name.
const Name = "NumberToWordsConverter"

// NumberWords spells out digit tokens and turns number-word tokens into digits.
type NumberWords struct {
	gate      augment.Gate
	level     augment.Level
	segmenter segment.Segmenter
}

// New creates a NumberWords transform.
func New(opts ...Option) (*NumberWords, error) {
	o := options{level: augment.LevelText, p: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	if err := augment.ValidateLevel(o.level, augment.LevelText, augment.LevelWord); err != nil {
		return nil, err
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
	return &NumberWords{gate: gate.Named(Name), level: o.level, segmenter: o.segmenter}, nil
}

// Name implements augment.Transform.
func (n *NumberWords) Name() string { return Name }

// Transform converts each selected token. The text is returned untouched
// when no token changes.
func (n *NumberWords) Transform(ctx context.Context, text string) (string, error) {
	words := n.segmenter.Words(text)
	changed := false
	for i, w := range words {
		if n.level != augment.LevelText && !n.gate.Fire(ctx) {
			continue
		}
		if out, ok := convert(w); ok {
			words[i] = out
			changed = true
		}
	}
	if !changed {
		return text, nil
	}
	return segment.Join(words), nil
}

func convert(word string) (string, bool) {
	if isDigits(word) {
		v, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return "", false
		}
		return numwords.ToWords(v), true
	}
	v, err := numwords.ToNumber(word)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(v, 10), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ApplyOne implements augment.Applier.
func (n *NumberWords) ApplyOne(ctx context.Context, text string) (string, error) {
	return n.gate.Run(ctx, text, n.level == augment.LevelWord, n.Transform)
}

// ApplyMany implements augment.Applier.
func (n *NumberWords) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, n.ApplyOne)
}
