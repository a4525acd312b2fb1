//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package accent converts between American and British spellings.
package accent

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/dictionary"
	"trpc.group/trpc-go/trpc-augment-go/log"
)

// Name is the transform name.
const Name = "AccentConverter"

// Accent rewrites a text entirely into one spelling variant per call.
type Accent struct {
	gate       augment.Gate
	level      augment.Level
	forward    *dictionary.Dictionary
	reverse    *dictionary.Dictionary
	boundaries string
}

// New creates an Accent transform. When no dictionary is supplied it is
// downloaded now, and a failed download is a configuration error.
func New(ctx context.Context, opts ...Option) (*Accent, error) {
	o := newOptions(opts)
	if err := augment.ValidateLevel(o.level, augment.LevelText, augment.LevelWord); err != nil {
		return nil, err
	}
	gate, err := augment.NewGate(o.p, o.rand)
	if err != nil {
		return nil, err
	}
	var dict *dictionary.Dictionary
	if o.dict != nil {
		dict, err = dictionary.New(o.dict, dictionary.WithStrict(o.strict))
	} else {
		dict, err = dictionary.Fetch(ctx, o.httpClient, o.url, dictionary.WithStrict(o.strict))
	}
	if err != nil {
		return nil, fmt.Errorf("accent dictionary: %v: %w", err, augment.ErrConfiguration)
	}
	log.Debugf("accent: %d entries, level %s", dict.Len(), o.level)
	return &Accent{
		gate:       gate.Named(Name),
		level:      o.level,
		forward:    dict,
		reverse:    dict.Reverse(),
		boundaries: o.boundaries,
	}, nil
}

// Name implements augment.Transform.
func (a *Accent) Name() string { return Name }

// Transform picks the forward or the reverse table with equal chance and
// substitutes in that direction only.
func (a *Accent) Transform(ctx context.Context, text string) (string, error) {
	dict := a.forward
	if a.gate.Rand(ctx).IntN(2) == 0 {
		dict = a.reverse
	}
	return a.substitute(ctx, text, dict), nil
}

func (a *Accent) substitute(ctx context.Context, text string, dict *dictionary.Dictionary) string {
	for _, e := range dict.Entries() {
		if a.level != augment.LevelText && !a.gate.Fire(ctx) {
			continue
		}
		if strings.Contains(text, e.Key) {
			text = dictionary.Replace(text, e.Key, e.Value, a.boundaries)
		}
	}
	return text
}

// ApplyOne implements augment.Applier.
func (a *Accent) ApplyOne(ctx context.Context, text string) (string, error) {
	return a.gate.Run(ctx, text, a.level == augment.LevelWord, a.Transform)
}

// ApplyMany implements augment.Applier.
func (a *Accent) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, a.ApplyOne)
}
