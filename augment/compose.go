//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package augment

import (
	"context"
	"fmt"
	"time"
)

// Compose runs a fixed sequence of appliers, feeding each output into the next.
type Compose struct {
	stages []Applier
}

// NewCompose returns a pipeline over appliers. Nil appliers are skipped and
// an empty pipeline is the identity.
func NewCompose(appliers ...Applier) *Compose {
	stages := make([]Applier, 0, len(appliers))
	for _, a := range appliers {
		if a != nil {
			stages = append(stages, a)
		}
	}
	return &Compose{stages: stages}
}

// Name returns "Compose".
func (c *Compose) Name() string { return "Compose" }

// Len returns the number of stages.
func (c *Compose) Len() int { return len(c.stages) }

// Stages returns a copy of the stage list.
func (c *Compose) Stages() []Applier {
	return append([]Applier(nil), c.stages...)
}

// Pace returns the longest pause required by any stage.
func (c *Compose) Pace() time.Duration {
	var pace time.Duration
	for _, stage := range c.stages {
		if p, ok := stage.(Pacer); ok {
			pace = max(pace, p.Pace())
		}
	}
	return pace
}

// ApplyOne threads text through every stage in order.
func (c *Compose) ApplyOne(ctx context.Context, text string) (string, error) {
	var err error
	for i, stage := range c.stages {
		if text, err = stage.ApplyOne(ctx, text); err != nil {
			return "", stageError(i, stage, err)
		}
	}
	return text, nil
}

// ApplyMany threads the whole batch through every stage in order.
func (c *Compose) ApplyMany(ctx context.Context, texts []string) ([]string, error) {
	out := texts
	for i, stage := range c.stages {
		next, err := stage.ApplyMany(ctx, out)
		if err != nil {
			return nil, stageError(i, stage, err)
		}
		if len(next) != len(out) {
			return nil, fmt.Errorf("stage %d (%s) returned %d texts for %d inputs", i, stageName(stage), len(next), len(out))
		}
		out = next
	}
	if len(c.stages) == 0 {
		out = append([]string(nil), texts...)
	}
	return out, nil
}

func stageError(i int, stage Applier, err error) error {
	return fmt.Errorf("stage %d (%s): %w", i, stageName(stage), err)
}

func stageName(a Applier) string {
	if n, ok := a.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", a)
}
