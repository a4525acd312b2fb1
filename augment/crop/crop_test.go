//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package crop

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-augment-go/augment"
)

type pipeSegmenter struct{}

func (pipeSegmenter) Sentences(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "|")
}

func (pipeSegmenter) Words(text string) []string { return strings.Fields(text) }

func TestNewValidation(t *testing.T) {
	for name, opts := range map[string][]Option{
		"negative left":  {WithSize(-1, 1)},
		"negative right": {WithSize(1, -1)},
		"negative min":   {WithMinSentences(-1)},
		"bad p":          {WithProbability(-0.5)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(append(opts, WithSegmenter(pipeSegmenter{}))...)
			assert.ErrorIs(t, err, augment.ErrConfiguration)
		})
	}
}

func TestTransformTooShort(t *testing.T) {
	c, err := New(WithMinSentences(2), WithSegmenter(pipeSegmenter{}))
	require.NoError(t, err)
	// 2m+1 = 5 sentences are required.
	_, err = c.Transform(context.Background(), "a|b|c|d")
	assert.ErrorIs(t, err, augment.ErrRange)

	_, err = c.Transform(context.Background(), "")
	assert.ErrorIs(t, err, augment.ErrRange)
}

func TestTransformWindow(t *testing.T) {
	c, err := New(WithSize(1, 1), WithMinSentences(1), WithSegmenter(pipeSegmenter{}), WithSeed(11))
	require.NoError(t, err)

	all := []string{"s0", "s1", "s2", "s3", "s4", "s5"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		out, err := c.Transform(context.Background(), strings.Join(all, "|"))
		require.NoError(t, err)
		got := strings.Split(out, " ")
		// Pivot in [1, 4], window of three consecutive sentences.
		require.Len(t, got, 3)
		first := got[0]
		idx := strings.Index(strings.Join(all, " "), strings.Join(got, " "))
		assert.GreaterOrEqual(t, idx, 0, "window %q is not contiguous", out)
		seen[first] = true
	}
	assert.Equal(t, map[string]bool{"s0": true, "s1": true, "s2": true, "s3": true}, seen)
}

func TestTransformClampsWindow(t *testing.T) {
	c, err := New(WithSize(5, 5), WithMinSentences(0), WithSegmenter(pipeSegmenter{}), WithSeed(2))
	require.NoError(t, err)
	out, err := c.Transform(context.Background(), "a|b|c")
	require.NoError(t, err)
	assert.Equal(t, "a b c", out)

	single, err := c.Transform(context.Background(), "only")
	require.NoError(t, err)
	assert.Equal(t, "only", single)
}

func TestApplyProbabilityZeroKeepsShortText(t *testing.T) {
	c, err := New(WithProbability(0), WithSegmenter(pipeSegmenter{}))
	require.NoError(t, err)
	out, err := c.ApplyOne(context.Background(), "too|short")
	require.NoError(t, err)
	assert.Equal(t, "too|short", out)
}

func TestApplyManyPropagatesRangeError(t *testing.T) {
	c, err := New(WithProbability(1), WithSegmenter(pipeSegmenter{}))
	require.NoError(t, err)
	_, err = c.ApplyMany(context.Background(), []string{"a|b|c", "short"})
	assert.ErrorIs(t, err, augment.ErrRange)
}
