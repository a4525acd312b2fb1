//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package keyword replaces keywords with randomly chosen alternatives.
package keyword

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-augment-go/augment"
)

// Name is the transform name.
const Name = "KeywordReplacer"

type entry struct {
	key        string
	candidates []string
}

// Keyword substitutes plain substrings with one of their candidates.
type Keyword struct {
	gate          augment.Gate
	level         augment.Level
	perOccurrence bool
	entries       []entry
}

// New creates a Keyword transform. Keys are visited in sorted order and
// keys without candidates are ignored.
func New(opts ...Option) (*Keyword, error) {
	o := options{level: augment.LevelText, p: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	if o.keywords == nil {
		return nil, fmt.Errorf("keywords are required: %w", augment.ErrConfiguration)
	}
	if err := augment.ValidateLevel(o.level, augment.LevelText, augment.LevelWord); err != nil {
		return nil, err
	}
	gate, err := augment.NewGate(o.p, o.rand)
	if err != nil {
		return nil, err
	}
	entries := make([]entry, 0, len(o.keywords))
	for k, c := range o.keywords {
		if k == "" {
			return nil, fmt.Errorf("empty keyword: %w", augment.ErrConfiguration)
		}
		if len(c) == 0 {
			continue
		}
		entries = append(entries, entry{key: k, candidates: append([]string(nil), c...)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return &Keyword{gate: gate.Named(Name), level: o.level, perOccurrence: o.perOccurrence, entries: entries}, nil
}

// Name implements augment.Transform.
func (k *Keyword) Name() string { return Name }

func (k *Keyword) selected(ctx context.Context) bool {
	return k.level == augment.LevelText || k.gate.Fire(ctx)
}

func (k *Keyword) pick(ctx context.Context, candidates []string) string {
	return candidates[k.gate.Rand(ctx).IntN(len(candidates))]
}

// Transform replaces every selected keyword occurrence.
func (k *Keyword) Transform(ctx context.Context, text string) (string, error) {
	for _, e := range k.entries {
		if !strings.Contains(text, e.key) {
			continue
		}
		if k.perOccurrence {
			text = k.replaceEach(ctx, text, e)
			continue
		}
		if k.selected(ctx) {
			text = strings.ReplaceAll(text, e.key, k.pick(ctx, e.candidates))
		}
	}
	return text, nil
}

func (k *Keyword) replaceEach(ctx context.Context, text string, e entry) string {
	var b strings.Builder
	rest := text
	for {
		i := strings.Index(rest, e.key)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		if k.selected(ctx) {
			b.WriteString(k.pick(ctx, e.candidates))
		} else {
			b.WriteString(e.key)
		}
		rest = rest[i+len(e.key):]
	}
	b.WriteString(rest)
	return b.String()
}

// ApplyOne implements augment.Applier.
func (k *Keyword) ApplyOne(ctx context.Context, text string) (string, error) {
	return k.gate.Run(ctx, text, k.level == augment.LevelWord, k.Transform)
}

// ApplyMany implements augment.Applier.
func (k *Keyword) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, k.ApplyOne)
}
