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
	"math/rand/v2"
	"sort"
	"sync"
)

// Rand is a random source safe for concurrent use by several transforms.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a deterministic source seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var defaultRand = &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}

// DefaultRand returns the process-wide source used when no source is configured.
func DefaultRand() *Rand {
	return defaultRand
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

// Sample returns k distinct indices drawn uniformly from [0, n), sorted
// ascending. k is clamped to [0, n].
func (r *Rand) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.mu.Lock()
	// Partial Fisher-Yates: the first k slots end up as the sample.
	for i := 0; i < k; i++ {
		j := i + r.r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	r.mu.Unlock()
	out := idx[:k:k]
	sort.Ints(out)
	return out
}

type randKey struct{}

// ContextWithRand returns a copy of ctx whose draws come from r. Transforms
// applied with the returned context ignore their configured source, which
// lets a caller give every document its own seeded stream.
func ContextWithRand(ctx context.Context, r *Rand) context.Context {
	return context.WithValue(ctx, randKey{}, r)
}

// RandFromContext returns the source set by ContextWithRand, or nil.
func RandFromContext(ctx context.Context) *Rand {
	if ctx == nil {
		return nil
	}
	r, _ := ctx.Value(randKey{}).(*Rand)
	return r
}
