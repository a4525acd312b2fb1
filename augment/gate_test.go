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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper(_ context.Context, text string) (string, error) {
	return strings.ToUpper(text), nil
}

func TestNewGateRejectsInvalidProbability(t *testing.T) {
	tests := []struct {
		name string
		p    float64
	}{
		{"negative", -0.1},
		{"above one", 1.01},
		{"nan", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGate(tt.p, nil)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestGateBounds(t *testing.T) {
	ctx := context.Background()
	never, err := NewGate(0, NewRand(1))
	require.NoError(t, err)
	always, err := NewGate(1, NewRand(1))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		out, err := never.Apply(ctx, "abc", upper)
		require.NoError(t, err)
		assert.Equal(t, "abc", out)

		out, err = always.Apply(ctx, "abc", upper)
		require.NoError(t, err)
		assert.Equal(t, "ABC", out)
	}
}

func TestGateFrequency(t *testing.T) {
	g, err := NewGate(0.3, NewRand(7))
	require.NoError(t, err)
	fired := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if g.Fire(context.Background()) {
			fired++
		}
	}
	assert.InDelta(t, 0.3, float64(fired)/n, 0.03)
}

func TestGateRunForce(t *testing.T) {
	g, err := NewGate(0, NewRand(1))
	require.NoError(t, err)
	out, err := g.Run(context.Background(), "abc", true, upper)
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("sentence")
	require.NoError(t, err)
	assert.Equal(t, LevelSentence, l)

	_, err = ParseLevel("paragraph")
	assert.ErrorIs(t, err, ErrConfiguration)

	assert.NoError(t, ValidateLevel(LevelWord, LevelWord, LevelSentence))
	assert.ErrorIs(t, ValidateLevel(LevelText, LevelWord, LevelSentence), ErrConfiguration)
}

func TestRandSample(t *testing.T) {
	r := NewRand(3)
	for n := 0; n < 20; n++ {
		for k := 0; k <= n+1; k++ {
			got := r.Sample(n, k)
			want := min(k, n)
			require.Len(t, got, want)
			seen := map[int]bool{}
			for i, v := range got {
				assert.True(t, v >= 0 && v < n)
				assert.False(t, seen[v])
				seen[v] = true
				if i > 0 {
					assert.Less(t, got[i-1], v)
				}
			}
		}
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, a.Sample(10, 4), b.Sample(10, 4))
}

func TestContextRandOverridesGateSource(t *testing.T) {
	g, err := NewGate(0.5, NewRand(1))
	require.NoError(t, err)

	draws := func(seed uint64) []bool {
		ctx := ContextWithRand(context.Background(), NewRand(seed))
		out := make([]bool, 64)
		for i := range out {
			out[i] = g.Fire(ctx)
		}
		return out
	}
	assert.Equal(t, draws(9), draws(9))
	assert.NotEqual(t, draws(9), draws(10))

	r := NewRand(5)
	assert.Same(t, r, g.Rand(ContextWithRand(context.Background(), r)))
	assert.Nil(t, RandFromContext(context.Background()))
}
