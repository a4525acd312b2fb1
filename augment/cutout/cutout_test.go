//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package cutout

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-augment-go/augment"
)

// spaceSegmenter splits sentences on " | " and words on spaces.
type spaceSegmenter struct{}

func (spaceSegmenter) Sentences(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " | ")
}

func (spaceSegmenter) Words(text string) []string { return strings.Fields(text) }

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"text level", []Option{WithLevel(augment.LevelText)}},
		{"negative fraction", []Option{WithFraction(-0.1)}},
		{"fraction above one", []Option{WithFraction(1.5)}},
		{"bad probability", []Option{WithProbability(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(append(tt.opts, WithSegmenter(spaceSegmenter{}))...)
			assert.ErrorIs(t, err, augment.ErrConfiguration)
		})
	}
}

func TestTransformDeletesCeilFraction(t *testing.T) {
	words := strings.Fields("a b c d e f g h i j")
	c, err := New(WithFraction(0.25), WithSegmenter(spaceSegmenter{}), WithSeed(1))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		out, err := c.Transform(context.Background(), strings.Join(words, " "))
		require.NoError(t, err)
		got := strings.Fields(out)
		// ceil(0.25 * 10) = 3 deletions.
		require.Len(t, got, 7)
		assertSubsequence(t, words, got)
	}
}

func assertSubsequence(t *testing.T, full, sub []string) {
	t.Helper()
	j := 0
	for _, w := range full {
		if j < len(sub) && sub[j] == w {
			j++
		}
	}
	assert.Equal(t, len(sub), j, "%v is not an ordered subsequence of %v", sub, full)
}

func TestTransformSentenceLevel(t *testing.T) {
	c, err := New(WithLevel(augment.LevelSentence), WithFraction(0.5), WithSegmenter(spaceSegmenter{}), WithSeed(3))
	require.NoError(t, err)
	out, err := c.Transform(context.Background(), "one | two | three | four")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 2)
}

func TestTransformEdges(t *testing.T) {
	ctx := context.Background()
	zero, err := New(WithFraction(0), WithSegmenter(spaceSegmenter{}))
	require.NoError(t, err)
	out, err := zero.Transform(ctx, "keep every word")
	require.NoError(t, err)
	assert.Equal(t, "keep every word", out)

	all, err := New(WithFraction(1), WithSegmenter(spaceSegmenter{}))
	require.NoError(t, err)
	out, err = all.Transform(ctx, "drop every word")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = all.Transform(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestApplyProbabilityBounds(t *testing.T) {
	ctx := context.Background()
	never, err := New(WithProbability(0), WithFraction(1), WithSegmenter(spaceSegmenter{}))
	require.NoError(t, err)
	always, err := New(WithProbability(1), WithFraction(1), WithSegmenter(spaceSegmenter{}))
	require.NoError(t, err)

	texts := []string{"a b", "c d e", "f"}
	out, err := never.ApplyMany(ctx, texts)
	require.NoError(t, err)
	assert.Equal(t, texts, out)

	out, err = always.ApplyMany(ctx, texts)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, out)
}

func TestDefaultSegmenter(t *testing.T) {
	c, err := New(WithProbability(1), WithFraction(0.2), WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, Name, c.Name())
	out, err := c.ApplyOne(context.Background(), "The quick brown fox jumps over the lazy dog.")
	require.NoError(t, err)
	// 10 tokens including the final period, ceil(0.2 * 10) = 2 removed.
	assert.NotEqual(t, "The quick brown fox jumps over the lazy dog.", out)
}
