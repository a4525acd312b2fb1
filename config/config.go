//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package config loads YAML pipeline definitions and builds them into a
// Compose of registered transforms.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/dictionary"
	"trpc.group/trpc-go/trpc-augment-go/segment"
	"trpc.group/trpc-go/trpc-augment-go/translator"
)

// Pipeline is the top-level YAML document.
type Pipeline struct {
	// Seed makes every stage draw from one deterministic source.
	Seed       *uint64 `yaml:"seed,omitempty"`
	Transforms []Stage `yaml:"transforms"`
}

// Stage configures one transform.
type Stage struct {
	Name    string    `yaml:"name"`
	P       *float64  `yaml:"p,omitempty"`
	Options yaml.Node `yaml:"options,omitempty"`
}

// Decode decodes the stage options into v. Missing options leave v
// untouched and keys that v does not declare are rejected.
func (s Stage) Decode(v any) error {
	if s.Options.Kind == 0 {
		return nil
	}
	b, err := yaml.Marshal(&s.Options)
	if err != nil {
		return fmt.Errorf("%s options: %v: %w", s.Name, err, augment.ErrConfiguration)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s options: %v: %w", s.Name, err, augment.ErrConfiguration)
	}
	return nil
}

// Uses reports whether any stage names the transform name.
func (p *Pipeline) Uses(name string) bool {
	if p == nil {
		return false
	}
	for _, s := range p.Transforms {
		if normalize(s.Name) == normalize(name) {
			return true
		}
	}
	return false
}

// Deps carries the collaborators a stage may need.
type Deps struct {
	Translator translator.Translator
	Segmenter  segment.Segmenter
	HTTPClient dictionary.HTTPClient
	Rand       *augment.Rand
}

// Load reads a pipeline definition from path.
func Load(path string) (*Pipeline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline config: %w", err)
	}
	return Parse(b)
}

// Parse decodes a pipeline definition. Unknown top-level fields are rejected.
func Parse(b []byte) (*Pipeline, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var p Pipeline
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse pipeline config: %v: %w", err, augment.ErrConfiguration)
	}
	return &p, nil
}

// Build constructs the pipeline stages in order.
func Build(ctx context.Context, p *Pipeline, deps Deps) (*augment.Compose, error) {
	if p == nil {
		return augment.NewCompose(), nil
	}
	if deps.Rand == nil && p.Seed != nil {
		deps.Rand = augment.NewRand(*p.Seed)
	}
	stages := make([]augment.Applier, 0, len(p.Transforms))
	for i, s := range p.Transforms {
		builder, ok := lookup(s.Name)
		if !ok {
			return nil, fmt.Errorf("stage %d: unknown transform %q: %w", i, s.Name, augment.ErrConfiguration)
		}
		a, err := builder(ctx, s, deps)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.Name, err)
		}
		stages = append(stages, a)
	}
	return augment.NewCompose(stages...), nil
}
