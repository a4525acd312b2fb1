//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package config

import (
	"context"
	"sort"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-augment-go/augment"
)

// Builder creates a transform from its stage configuration.
type Builder func(ctx context.Context, stage Stage, deps Deps) (augment.Applier, error)

// Registry maps transform names to builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// globalRegistry is the singleton registry instance.
var globalRegistry = &Registry{
	builders: make(map[string]Builder),
}

// normalize makes "sentence_removal", "Sentence-Removal" and
// "sentenceremoval" the same name.
func normalize(name string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
}

// Register adds or replaces the builder for name.
func Register(name string, builder Builder) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.builders[normalize(name)] = builder
}

func lookup(name string) (Builder, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	b, ok := globalRegistry.builders[normalize(name)]
	return b, ok
}

// Names returns the registered transform names, sorted.
func Names() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	names := make([]string, 0, len(globalRegistry.builders))
	for name := range globalRegistry.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
