//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package slang expands contractions and slang into their full forms, and
// optionally contracts full forms back.
package slang

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/dictionary"
	"trpc.group/trpc-go/trpc-augment-go/log"
)

// Name is the transform name.
const Name = "SlangConverter"

// Slang substitutes dictionary entries at word boundaries.
type Slang struct {
	gate        augment.Gate
	level       augment.Level
	dict        *dictionary.Dictionary
	reverse     map[string]string
	fullToSlang bool
	boundaries  string
}

// New creates a Slang transform.
func New(opts ...Option) (*Slang, error) {
	o := newOptions(opts)
	if err := augment.ValidateLevel(o.level, augment.LevelText, augment.LevelWord); err != nil {
		return nil, err
	}
	gate, err := augment.NewGate(o.p, o.rand)
	if err != nil {
		return nil, err
	}
	var dict *dictionary.Dictionary
	if o.dict == nil {
		dict, err = dictionary.Contractions(dictionary.WithStrict(o.strict))
	} else {
		dict, err = dictionary.New(o.dict, dictionary.WithStrict(o.strict))
	}
	if err != nil {
		return nil, fmt.Errorf("slang dictionary: %v: %w", err, augment.ErrConfiguration)
	}
	reverse := make(map[string]string, dict.Len())
	for _, e := range dict.Reverse().Entries() {
		reverse[e.Key] = e.Value
	}
	log.Debugf("slang: %d entries, level %s", dict.Len(), o.level)
	return &Slang{
		gate:        gate.Named(Name),
		level:       o.level,
		dict:        dict,
		reverse:     reverse,
		fullToSlang: o.fullToSlang,
		boundaries:  o.boundaries,
	}, nil
}

// Name implements augment.Transform.
func (s *Slang) Name() string { return Name }

// Transform walks the dictionary in order. Each entry is applied when the
// level is text or its own draw fires.
func (s *Slang) Transform(ctx context.Context, text string) (string, error) {
	for _, e := range s.dict.Entries() {
		if s.level != augment.LevelText && !s.gate.Fire(ctx) {
			continue
		}
		if strings.Contains(text, e.Key) {
			text = dictionary.Replace(text, e.Key, e.Value, s.boundaries)
			continue
		}
		if s.fullToSlang && strings.Contains(text, e.Value) {
			text = dictionary.Replace(text, e.Value, s.reverse[e.Value], s.boundaries)
		}
	}
	return text, nil
}

// ApplyOne implements augment.Applier. At word level the outer draw is
// skipped and only the per-entry draws apply.
func (s *Slang) ApplyOne(ctx context.Context, text string) (string, error) {
	return s.gate.Run(ctx, text, s.level == augment.LevelWord, s.Transform)
}

// ApplyMany implements augment.Applier.
func (s *Slang) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	return augment.ApplyEach(ctx, texts, s.ApplyOne)
}
